package sync

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
)

// MergeAction describes what the merger did with one tool block.
type MergeAction string

const (
	ActionCreated  MergeAction = "created"
	ActionAppended MergeAction = "appended"
	ActionReplaced MergeAction = "replaced"
	ActionSkipped  MergeAction = "skipped"
	ActionFailed   MergeAction = "failed"
)

// MergeResult records the outcome for one tool in one file.
type MergeResult struct {
	File   string      `json:"file"`
	Tool   string      `json:"tool"`
	Action MergeAction `json:"action"`
	Reason string      `json:"reason,omitempty"`
}

// Merger applies generated tool blocks to the committed tool files. Each
// client module maps to one file, {module}.go. Existing blocks are kept
// when unchanged, replaced when they drift, and duplicate definitions of
// the same tool are collapsed to a single fresh block.
type Merger struct {
	ToolsDir string
	Force    bool // replace blocks even when unchanged
	Logger   *common.Logger
}

// Apply merges the methods into the tools directory, grouped per module,
// and rebuilds the aggregator. Files that fail to parse are skipped; the
// rest of the merge still proceeds.
func (mg *Merger) Apply(methods []Method) ([]MergeResult, error) {
	byModule := make(map[string][]Method)
	for _, m := range methods {
		byModule[m.Module] = append(byModule[m.Module], m)
	}

	modules := make([]string, 0, len(byModule))
	for module := range byModule {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	var results []MergeResult
	for _, module := range modules {
		fileResults := mg.mergeModule(module, byModule[module])
		results = append(results, fileResults...)
	}

	if err := mg.RebuildAggregator(); err != nil {
		return results, err
	}
	return results, nil
}

func (mg *Merger) mergeModule(module string, methods []Method) []MergeResult {
	filename := module + ".go"
	path := filepath.Join(mg.ToolsDir, filename)

	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		content := RenderServiceFile(module, methods)
		if writeErr := writeFormatted(path, []byte(content)); writeErr != nil {
			return failAll(filename, methods, writeErr.Error())
		}
		mg.Logger.Info().Str("file", filename).Int("tools", len(methods)).Msg("Created tool file")
		results := make([]MergeResult, 0, len(methods))
		for _, m := range methods {
			results = append(results, MergeResult{File: filename, Tool: m.ToolName(), Action: ActionCreated})
		}
		return results
	}
	if err != nil {
		return failAll(filename, methods, err.Error())
	}

	merged, results, err := mg.mergeIntoSource(filename, src, methods)
	if err != nil {
		mg.Logger.Error().Str("file", filename).Err(err).Msg("Skipping unparseable tool file")
		return failAll(filename, methods, err.Error())
	}
	if string(merged) != string(src) {
		if err := writeFormatted(path, merged); err != nil {
			return failAll(filename, methods, err.Error())
		}
	}
	return results
}

// funcBlock is the byte range of one top-level function, doc comment
// included.
type funcBlock struct {
	start, end int
}

// replacement pairs a fresh tool block with the byte ranges of its
// existing definitions. The fresh block takes the place of the first
// definition; any later duplicates are removed.
type replacement struct {
	blocks []funcBlock
	text   string
}

// mergeIntoSource splices the rendered blocks into existing source. For
// each tool: absent appends, unchanged skips, changed or duplicated
// replaces the first occurrence in place and removes the rest.
func (mg *Merger) mergeIntoSource(filename string, src []byte, methods []Method) ([]byte, []MergeResult, error) {
	blocks, err := registerBlocks(src)
	if err != nil {
		return nil, nil, err
	}

	var results []MergeResult
	var toReplace []replacement
	var toAppend []string

	sorted := append([]Method(nil), methods...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ToolName() < sorted[j].ToolName() })

	for _, m := range sorted {
		fn := registerFuncName(m)
		rendered := RenderToolBlock(m)
		existing := blocks[fn]

		switch {
		case len(existing) == 0:
			toAppend = append(toAppend, rendered)
			results = append(results, MergeResult{File: filename, Tool: m.ToolName(), Action: ActionAppended})
		case len(existing) == 1 && !mg.Force && normalizedEqual(string(src[existing[0].start:existing[0].end]), rendered):
			results = append(results, MergeResult{File: filename, Tool: m.ToolName(), Action: ActionSkipped})
		default:
			toReplace = append(toReplace, replacement{blocks: existing, text: rendered})
			reason := "changed"
			if len(existing) > 1 {
				reason = fmt.Sprintf("collapsed %d duplicate definitions", len(existing))
			} else if mg.Force {
				reason = "forced"
			}
			results = append(results, MergeResult{File: filename, Tool: m.ToolName(), Action: ActionReplaced, Reason: reason})
		}
	}

	merged := spliceSource(src, toReplace, toAppend)
	formatted, err := format.Source(merged)
	if err != nil {
		return nil, nil, fmt.Errorf("merged source does not format: %w", err)
	}
	return formatted, results, nil
}

// registerBlocks maps each register function name to the byte ranges of
// its definitions, doc comments included.
func registerBlocks(src []byte) (map[string][]funcBlock, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	blocks := make(map[string][]funcBlock)
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || !strings.HasPrefix(fn.Name.Name, "register") {
			continue
		}
		start := fn.Pos()
		if fn.Doc != nil {
			start = fn.Doc.Pos()
		}
		blocks[fn.Name.Name] = append(blocks[fn.Name.Name], funcBlock{
			start: fset.Position(start).Offset,
			end:   fset.Position(fn.End()).Offset,
		})
	}
	return blocks, nil
}

// spliceSource applies the replacements in place and appends brand-new
// blocks at the end of the file. A replaced tool keeps the position of its
// first definition; duplicate definitions are removed.
func spliceSource(src []byte, replace []replacement, appendBlocks []string) []byte {
	type edit struct {
		start, end int
		text       string
	}
	var edits []edit
	for _, r := range replace {
		blocks := append([]funcBlock(nil), r.blocks...)
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].start < blocks[j].start })
		edits = append(edits, edit{
			start: blocks[0].start,
			end:   blocks[0].end,
			text:  strings.TrimRight(r.text, "\n"),
		})
		for _, blk := range blocks[1:] {
			edits = append(edits, edit{start: blk.start, end: blk.end})
		}
	}
	sort.Slice(edits, func(i, j int) bool { return edits[i].start > edits[j].start })

	out := append([]byte(nil), src...)
	for _, e := range edits {
		end := e.end
		if e.text == "" {
			for end < len(out) && out[end] == '\n' {
				end++
			}
		}
		var buf bytes.Buffer
		buf.Write(out[:e.start])
		buf.WriteString(e.text)
		buf.Write(out[end:])
		out = buf.Bytes()
	}

	text := strings.TrimRight(string(out), "\n") + "\n"
	for _, block := range appendBlocks {
		text += "\n" + block
	}
	return []byte(text)
}

// normalizedEqual compares two code blocks ignoring whitespace layout.
func normalizedEqual(a, b string) bool {
	return strings.Join(strings.Fields(a), " ") == strings.Join(strings.Fields(b), " ")
}

var registerFuncPattern = regexp.MustCompile(`^register[A-Z]`)

// RebuildAggregator regenerates register.go from the register functions
// present in the tool files.
func (mg *Merger) RebuildAggregator() error {
	entries, err := os.ReadDir(mg.ToolsDir)
	if err != nil {
		return fmt.Errorf("failed to read tools dir: %w", err)
	}

	var funcNames []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") || name == "register.go" {
			continue
		}
		src, err := os.ReadFile(filepath.Join(mg.ToolsDir, name))
		if err != nil {
			return err
		}
		blocks, err := registerBlocks(src)
		if err != nil {
			mg.Logger.Warn().Str("file", name).Err(err).Msg("Skipping unparseable file in aggregator rebuild")
			continue
		}
		for fn := range blocks {
			if registerFuncPattern.MatchString(fn) {
				funcNames = append(funcNames, fn)
			}
		}
	}

	content := RenderAggregator(funcNames)
	return writeFormatted(filepath.Join(mg.ToolsDir, "register.go"), []byte(content))
}

func writeFormatted(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("generated source does not format: %w", err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

func failAll(filename string, methods []Method, reason string) []MergeResult {
	results := make([]MergeResult, 0, len(methods))
	for _, m := range methods {
		results = append(results, MergeResult{File: filename, Tool: m.ToolName(), Action: ActionFailed, Reason: reason})
	}
	return results
}
