package registry

import (
	"fmt"
	"sort"
	"strings"
)

// MarkdownDocs renders the tool inventory as markdown reference
// documentation, grouped by category.
func MarkdownDocs(snap Snapshot) string {
	var b strings.Builder
	b.WriteString("# MCP Tool Reference\n\n")
	fmt.Fprintf(&b, "Total tools: %d\n\n", snap.TotalTools)
	if !snap.Summary.WriteToolsEnabled {
		b.WriteString("Write tools are currently disabled. Set `ENABLE_WRITE_TOOLS=true` to expose them.\n\n")
	}

	categories := make([]string, 0, len(snap.Categories))
	for cat := range snap.Categories {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	byName := make(map[string]ToolInfo, len(snap.Tools))
	for _, info := range snap.Tools {
		byName[info.Name] = info
	}

	for _, cat := range categories {
		fmt.Fprintf(&b, "## %s tools\n\n", titleCase(cat))
		names := append([]string(nil), snap.Categories[cat]...)
		sort.Strings(names)
		for _, name := range names {
			info := byName[name]
			fmt.Fprintf(&b, "### `%s`\n\n", info.Name)
			if info.Description != "" {
				b.WriteString(info.Description + "\n\n")
			}
			if len(info.Parameters) > 0 {
				b.WriteString("| Parameter | Type | Required | Default |\n")
				b.WriteString("|-----------|------|----------|---------|\n")
				for _, p := range info.Parameters {
					def := p.Default
					if def == "" {
						def = "-"
					}
					fmt.Fprintf(&b, "| `%s` | %s | %v | %s |\n", p.Name, p.Type, p.Required, def)
				}
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
