package sync

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
)

const modulePath = "github.com/xplainable-io/xplainable-mcp-go"

// registerFuncName returns the generated registration function name for a
// method, e.g. registerModelsGetModel.
func registerFuncName(m Method) string {
	return "register" + snakeToUpperCamel(m.ToolName())
}

// displayDefault converts a Go default literal into the display value
// carried in the tool parameter metadata. Empty strings and nil defaults
// carry no display value.
func displayDefault(literal string) string {
	if literal == "" || literal == "nil" {
		return ""
	}
	if strings.HasPrefix(literal, `"`) {
		unquoted, err := strconv.Unquote(literal)
		if err != nil {
			return literal
		}
		return unquoted
	}
	return literal
}

func categoryConst(c registry.Category) string {
	switch c {
	case registry.CategoryWrite:
		return "registry.CategoryWrite"
	case registry.CategoryAdmin:
		return "registry.CategoryAdmin"
	case registry.CategoryDiscovery:
		return "registry.CategoryDiscovery"
	default:
		return "registry.CategoryRead"
	}
}

// RenderToolBlock renders the complete registration function for one
// method, exactly as it appears in the committed tool files.
func RenderToolBlock(m Method) string {
	fn := registerFuncName(m)
	tool := m.ToolName()

	var b strings.Builder
	fmt.Fprintf(&b, "// %s exposes %s.%s as the MCP tool %q.\n", fn, m.Module, m.Name, tool)
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// %s\n", m.Description)
	b.WriteString("//\n")
	fmt.Fprintf(&b, "// Category: %s\n", m.Category)
	fmt.Fprintf(&b, "func %s(reg *Registrar) {\n", fn)
	b.WriteString("\treg.add(registry.ToolInfo{\n")
	fmt.Fprintf(&b, "\t\tName:        %q,\n", tool)
	fmt.Fprintf(&b, "\t\tDescription: %q,\n", m.Description)
	fmt.Fprintf(&b, "\t\tCategory:    %s,\n", categoryConst(m.Category))
	if len(m.Params) > 0 {
		b.WriteString("\t\tParameters: []registry.Parameter{\n")
		for _, p := range m.Params {
			b.WriteString("\t\t\t{" + renderParamFields(p) + "},\n")
		}
		b.WriteString("\t\t},\n")
	}
	b.WriteString("\t}, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {\n")
	b.WriteString("\t\tclient, err := reg.client()\n")
	b.WriteString("\t\tif err != nil {\n")
	b.WriteString("\t\t\treturn nil, err\n")
	b.WriteString("\t\t}\n")
	for _, p := range m.Params {
		b.WriteString(renderParamExtraction(p))
	}
	fmt.Fprintf(&b, "\t\tresult, err := respond.SafeCall(%q, reg.logger(), func() (any, error) {\n", tool)
	fmt.Fprintf(&b, "\t\t\treturn client.%s.%s(%s)\n", m.ClientField, m.GoName, callArgs(m))
	b.WriteString("\t\t})\n")
	b.WriteString("\t\tif err != nil {\n")
	fmt.Fprintf(&b, "\t\t\treg.logger().Error().Err(err).Str(\"tool\", %q).Msg(\"Tool call failed\")\n", tool)
	b.WriteString("\t\t\treturn nil, err\n")
	b.WriteString("\t\t}\n")
	fmt.Fprintf(&b, "\t\treg.logger().Info().Str(\"tool\", %q).Msg(\"Tool executed\")\n", tool)
	b.WriteString("\t\treturn toolResult(respond.Normalize(result))\n")
	b.WriteString("\t})\n")
	b.WriteString("}\n")
	return b.String()
}

func renderParamFields(p Param) string {
	fields := []string{
		fmt.Sprintf("Name: %q", p.Name),
		fmt.Sprintf("Type: %q", p.Type),
		fmt.Sprintf("Required: %v", p.Required),
	}
	if def := displayDefault(p.Default); def != "" {
		fields = append(fields, fmt.Sprintf("Default: %q", def))
	}
	fields = append(fields, fmt.Sprintf("Description: %q", "Parameter "+p.Name))
	return strings.Join(fields, ", ")
}

// renderParamExtraction renders the handler lines that pull one argument
// out of the request.
func renderParamExtraction(p Param) string {
	var b strings.Builder
	switch p.Type {
	case "string":
		if p.Required {
			fmt.Fprintf(&b, "\t\t%s, err := request.RequireString(%q)\n", p.GoName, p.Name)
			b.WriteString("\t\tif err != nil {\n")
			b.WriteString("\t\t\treturn mcp.NewToolResultError(err.Error()), nil\n")
			b.WriteString("\t\t}\n")
		} else {
			fmt.Fprintf(&b, "\t\t%s := request.GetString(%q, %s)\n", p.GoName, p.Name, p.Default)
		}
	case "integer":
		fmt.Fprintf(&b, "\t\t%s := request.GetInt(%q, %s)\n", p.GoName, p.Name, defaultOr(p, "0"))
	case "number":
		fmt.Fprintf(&b, "\t\t%s := request.GetFloat(%q, %s)\n", p.GoName, p.Name, defaultOr(p, "0"))
	case "boolean":
		fmt.Fprintf(&b, "\t\t%s := request.GetBool(%q, %s)\n", p.GoName, p.Name, defaultOr(p, "false"))
	case "array":
		fmt.Fprintf(&b, "\t\t%s := request.GetStringSlice(%q, nil)\n", p.GoName, p.Name)
	case "object":
		fmt.Fprintf(&b, "\t\t%s := objectArg(request, %q)\n", p.GoName, p.Name)
		if p.Required {
			fmt.Fprintf(&b, "\t\tif %s == nil {\n", p.GoName)
			fmt.Fprintf(&b, "\t\t\treturn mcp.NewToolResultError(\"required argument \\\"%s\\\" not found\"), nil\n", p.Name)
			b.WriteString("\t\t}\n")
		}
	case "object_list":
		fmt.Fprintf(&b, "\t\t%s := objectListArg(request, %q)\n", p.GoName, p.Name)
		if p.Required {
			fmt.Fprintf(&b, "\t\tif %s == nil {\n", p.GoName)
			fmt.Fprintf(&b, "\t\t\treturn mcp.NewToolResultError(\"required argument \\\"%s\\\" not found\"), nil\n", p.Name)
			b.WriteString("\t\t}\n")
		}
	}
	return b.String()
}

func defaultOr(p Param, fallback string) string {
	if p.Default == "" || p.Default == "nil" {
		return fallback
	}
	return p.Default
}

func callArgs(m Method) string {
	args := []string{"ctx"}
	for _, p := range m.Params {
		args = append(args, p.GoName)
	}
	return strings.Join(args, ", ")
}

// RenderServiceFile renders a complete tool file for one client module.
func RenderServiceFile(module string, methods []Method) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// MCP tools for the %s service of the platform client.\n", module)
	b.WriteString("// Auto-generated and maintained by the xplainable-client sync workflow.\n")
	b.WriteString("package tools\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"context\"\n\n")
	b.WriteString("\t\"github.com/mark3labs/mcp-go/mcp\"\n\n")
	fmt.Fprintf(&b, "\t%q\n", modulePath+"/internal/registry")
	fmt.Fprintf(&b, "\t%q\n", modulePath+"/internal/respond")
	b.WriteString(")\n\n")

	sorted := append([]Method(nil), methods...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ToolName() < sorted[j].ToolName() })
	for i, m := range sorted {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderToolBlock(m))
	}
	return b.String()
}

// RenderAggregator renders the register.go file that wires all generated
// registration functions, given their names.
func RenderAggregator(funcNames []string) string {
	sorted := append([]string(nil), funcNames...)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("// Code generated by the xplainable-client sync workflow. DO NOT EDIT.\n\n")
	b.WriteString("package tools\n\n")
	b.WriteString("// RegisterGenerated wires every generated tool into the registrar.\n")
	b.WriteString("func RegisterGenerated(reg *Registrar) {\n")
	for _, name := range sorted {
		fmt.Fprintf(&b, "\t%s(reg)\n", name)
	}
	b.WriteString("}\n")
	return b.String()
}
