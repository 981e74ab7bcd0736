// Package sync implements the client-to-tools synchronization pipeline:
// introspecting the platform client's service methods, generating MCP tool
// wrappers for them, merging generated code into the committed tool files,
// and reporting drift between the client and the registered tools.
package sync

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
)

// Param is one introspected method parameter.
type Param struct {
	Name     string // snake_case wire name
	GoName   string // lowerCamel local used in generated code
	Type     string // string, integer, number, boolean, array, object, object_list
	Required bool
	Default  string // Go literal text from the Default doc marker, empty when required
}

// Method is one introspected client method, carrying everything codegen
// needs to render its tool wrapper.
type Method struct {
	Module      string // tool name prefix, e.g. "models"
	Name        string // snake_case method name, e.g. "get_model"
	GoName      string // exported Go method name, e.g. "GetModel"
	ClientField string // sub-service field on the client, e.g. "Models"
	Description string
	Category    registry.Category
	Params      []Param
}

// ToolName returns the MCP tool name for this method, always
// {module}_{method}.
func (m Method) ToolName() string {
	return m.Module + "_" + m.Name
}

// MethodFailure records a method or source file the introspector could not
// process. Failures never abort the scan; the remaining methods still sync.
type MethodFailure struct {
	Method string `json:"method"`
	Reason string `json:"reason"`
}

// IntrospectionResult is the outcome of scanning the client source.
type IntrospectionResult struct {
	Methods  []Method
	Failures []MethodFailure
}

// ToolNames returns the expected tool names, sorted.
func (r *IntrospectionResult) ToolNames() []string {
	names := make([]string, 0, len(r.Methods))
	for _, m := range r.Methods {
		names = append(names, m.ToolName())
	}
	sort.Strings(names)
	return names
}

// IntrospectClient parses the client package source under dir and extracts
// every exported method on a *XxxService receiver. Unexported methods and
// non-service functions are internal machinery and never become tools.
func IntrospectClient(dir string, logger *common.Logger) (*IntrospectionResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read client source dir: %w", err)
	}

	result := &IntrospectionResult{}
	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			logger.Warn().Str("file", name).Err(err).Msg("Skipping unparseable client source file")
			result.Failures = append(result.Failures, MethodFailure{Method: name, Reason: err.Error()})
			continue
		}
		introspectFile(file, result, logger)
	}

	sort.Slice(result.Methods, func(i, j int) bool {
		return result.Methods[i].ToolName() < result.Methods[j].ToolName()
	})
	logger.Debug().
		Int("methods", len(result.Methods)).
		Int("failures", len(result.Failures)).
		Msg("Client introspection complete")
	return result, nil
}

func introspectFile(file *ast.File, result *IntrospectionResult, logger *common.Logger) {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv == nil || !fn.Name.IsExported() {
			continue
		}
		service, ok := serviceName(fn.Recv)
		if !ok {
			continue
		}
		method, err := introspectMethod(service, fn)
		if err != nil {
			qualified := service + "." + fn.Name.Name
			logger.Warn().Str("method", qualified).Err(err).Msg("Skipping method")
			result.Failures = append(result.Failures, MethodFailure{Method: qualified, Reason: err.Error()})
			continue
		}
		result.Methods = append(result.Methods, method)
	}
}

// serviceName extracts the sub-service name from a *XxxService receiver.
func serviceName(recv *ast.FieldList) (string, bool) {
	if len(recv.List) != 1 {
		return "", false
	}
	star, ok := recv.List[0].Type.(*ast.StarExpr)
	if !ok {
		return "", false
	}
	ident, ok := star.X.(*ast.Ident)
	if !ok || !strings.HasSuffix(ident.Name, "Service") || !ident.IsExported() {
		return "", false
	}
	return strings.TrimSuffix(ident.Name, "Service"), true
}

func introspectMethod(service string, fn *ast.FuncDecl) (Method, error) {
	doc := parseDoc(fn.Doc, fn.Name.Name)
	method := Method{
		Module:      strings.ToLower(service),
		Name:        camelToSnake(fn.Name.Name),
		GoName:      fn.Name.Name,
		ClientField: service,
		Description: doc.description,
		Category:    doc.category,
	}

	params := fn.Type.Params.List
	if len(params) == 0 || !isContextParam(params[0]) {
		return Method{}, fmt.Errorf("first parameter must be context.Context")
	}
	for _, field := range params[1:] {
		toolType, err := paramType(field.Type)
		if err != nil {
			return Method{}, err
		}
		for _, nameIdent := range field.Names {
			wireName := camelToSnake(nameIdent.Name)
			p := Param{
				Name:   wireName,
				GoName: snakeToLowerCamel(wireName),
				Type:   toolType,
			}
			if def, ok := doc.defaults[wireName]; ok {
				p.Default = def
			} else {
				p.Required = true
			}
			method.Params = append(method.Params, p)
		}
	}

	if method.Category == "" {
		method.Category = heuristicCategory(method.Name)
	}
	if method.Description == "" {
		method.Description = capitalize(strings.ReplaceAll(method.Name, "_", " ")) + "."
	}
	return method, nil
}

type docInfo struct {
	description string
	category    registry.Category
	defaults    map[string]string
}

// parseDoc reads the structured markers out of a method doc comment: the
// first line is the description (with the conventional leading method name
// stripped), "Default name = literal" lines declare optional parameters,
// and a "Category:" line fixes the tool category. The marker always wins
// over the name heuristic.
func parseDoc(doc *ast.CommentGroup, methodName string) docInfo {
	info := docInfo{defaults: map[string]string{}}
	if doc == nil {
		return info
	}
	lines := strings.Split(strings.TrimSpace(doc.Text()), "\n")
	if len(lines) > 0 {
		desc := strings.TrimSpace(lines[0])
		desc = strings.TrimPrefix(desc, methodName+" ")
		info.description = capitalize(desc)
	}
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if cat, ok := strings.CutPrefix(line, "Category:"); ok {
			c := registry.Category(strings.TrimSpace(cat))
			if c.Valid() {
				info.category = c
			}
			continue
		}
		if rest, ok := strings.CutPrefix(line, "Default "); ok {
			name, literal, found := strings.Cut(rest, "=")
			if !found {
				continue
			}
			info.defaults[strings.TrimSpace(name)] = strings.TrimSpace(literal)
		}
	}
	return info
}

func isContextParam(field *ast.Field) bool {
	sel, ok := field.Type.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "context" && sel.Sel.Name == "Context"
}

// paramType maps a Go parameter type to its tool schema type.
func paramType(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "string":
			return "string", nil
		case "int":
			return "integer", nil
		case "float64":
			return "number", nil
		case "bool":
			return "boolean", nil
		case "any":
			return "object", nil
		}
	case *ast.ArrayType:
		if ident, ok := t.Elt.(*ast.Ident); ok && ident.Name == "string" {
			return "array", nil
		}
		if _, ok := t.Elt.(*ast.MapType); ok {
			return "object_list", nil
		}
	case *ast.MapType:
		return "object", nil
	}
	return "", fmt.Errorf("unsupported parameter type")
}

// heuristicCategory infers a category from the method name when no marker
// is present.
func heuristicCategory(name string) registry.Category {
	first, _, _ := strings.Cut(name, "_")
	switch first {
	case "create", "update", "delete", "deploy", "activate", "deactivate",
		"generate", "train", "start", "stop", "link":
		return registry.CategoryWrite
	case "admin", "manage", "config":
		return registry.CategoryAdmin
	case "discover":
		return registry.CategoryDiscovery
	}
	if name == "list_tools" {
		return registry.CategoryDiscovery
	}
	return registry.CategoryRead
}
