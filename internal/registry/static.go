package registry

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// StaticScanner discovers tools by parsing the generated source files under
// Dir, without loading or executing them. It reads the ToolInfo literal out
// of each register function, so its view matches what the files declare
// rather than what the running server has registered.
type StaticScanner struct {
	Dir               string
	Pattern           string // doublestar pattern relative to Dir, defaults to "*.go"
	WriteToolsEnabled bool
}

// Discover implements Discoverer by scanning the tool files.
func (s *StaticScanner) Discover() (Snapshot, error) {
	tools, err := s.Scan()
	if err != nil {
		return Snapshot{}, err
	}
	return buildSnapshot(tools, s.WriteToolsEnabled), nil
}

// Scan parses every matching file and returns the tools declared in them,
// sorted by name.
func (s *StaticScanner) Scan() ([]ToolInfo, error) {
	pattern := s.Pattern
	if pattern == "" {
		pattern = "*.go"
	}

	root := os.DirFS(s.Dir)
	matches, err := doublestar.Glob(root, pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid tool file pattern %q: %w", pattern, err)
	}

	var tools []ToolInfo
	for _, match := range matches {
		if strings.HasSuffix(match, "_test.go") {
			continue
		}
		fileTools, err := scanFile(filepath.Join(s.Dir, match))
		if err != nil {
			// An unparseable file is skipped; its tools surface as missing
			// in the sync report rather than failing the whole scan.
			continue
		}
		tools = append(tools, fileTools...)
	}

	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	for i := range tools {
		tools[i].Enabled = tools[i].Category != CategoryWrite || s.WriteToolsEnabled
	}
	return tools, nil
}

// scanFile extracts the ToolInfo literals from every register function in
// one source file.
func scanFile(path string) ([]ToolInfo, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var tools []ToolInfo
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "register") {
			continue
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			lit, ok := n.(*ast.CompositeLit)
			if !ok || !isToolInfoType(lit.Type) {
				return true
			}
			if info, ok := parseToolInfo(lit); ok {
				tools = append(tools, info)
			}
			return false
		})
	}
	return tools, nil
}

func isToolInfoType(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "registry" && sel.Sel.Name == "ToolInfo"
}

// parseToolInfo reads the fields of a registry.ToolInfo composite literal.
// Only literal values are understood; anything dynamic is skipped.
func parseToolInfo(lit *ast.CompositeLit) (ToolInfo, bool) {
	var info ToolInfo
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}
		switch key.Name {
		case "Name":
			info.Name = stringLit(kv.Value)
		case "Description":
			info.Description = stringLit(kv.Value)
		case "Category":
			info.Category = categoryIdent(kv.Value)
		case "Parameters":
			info.Parameters = parseParameters(kv.Value)
		}
	}
	if info.Name == "" {
		return ToolInfo{}, false
	}
	return info, true
}

func parseParameters(expr ast.Expr) []Parameter {
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil
	}
	var params []Parameter
	for _, elt := range lit.Elts {
		paramLit, ok := elt.(*ast.CompositeLit)
		if !ok {
			continue
		}
		var p Parameter
		for _, field := range paramLit.Elts {
			kv, ok := field.(*ast.KeyValueExpr)
			if !ok {
				continue
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}
			switch key.Name {
			case "Name":
				p.Name = stringLit(kv.Value)
			case "Type":
				p.Type = stringLit(kv.Value)
			case "Required":
				p.Required = boolLit(kv.Value)
			case "Default":
				p.Default = stringLit(kv.Value)
			case "Description":
				p.Description = stringLit(kv.Value)
			}
		}
		if p.Name != "" {
			params = append(params, p)
		}
	}
	return params
}

// categoryIdent maps a registry.CategoryX selector to its Category value.
func categoryIdent(expr ast.Expr) Category {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return ""
	}
	switch sel.Sel.Name {
	case "CategoryRead":
		return CategoryRead
	case "CategoryWrite":
		return CategoryWrite
	case "CategoryAdmin":
		return CategoryAdmin
	case "CategoryDiscovery":
		return CategoryDiscovery
	}
	return ""
}

func stringLit(expr ast.Expr) string {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return ""
	}
	value, err := strconv.Unquote(lit.Value)
	if err != nil {
		return ""
	}
	return value
}

func boolLit(expr ast.Expr) bool {
	ident, ok := expr.(*ast.Ident)
	return ok && ident.Name == "true"
}
