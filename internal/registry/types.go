// Package registry tracks the MCP tools exposed by the server. It supports
// two discovery strategies: a runtime registry populated as tools are
// registered, and a static scanner that reads tool definitions straight out
// of the generated source files.
package registry

// Category classifies what a tool does to platform state.
type Category string

const (
	CategoryRead      Category = "read"
	CategoryWrite     Category = "write"
	CategoryAdmin     Category = "admin"
	CategoryDiscovery Category = "discovery"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryRead, CategoryWrite, CategoryAdmin, CategoryDiscovery:
		return true
	}
	return false
}

// Parameter describes a single tool input.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToolInfo is the registry record for one MCP tool.
type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Parameters  []Parameter `json:"parameters,omitempty"`
	Enabled     bool        `json:"enabled"`
}

// Summary aggregates tool counts per category.
type Summary struct {
	ReadTools         int  `json:"read_tools"`
	WriteTools        int  `json:"write_tools"`
	AdminTools        int  `json:"admin_tools"`
	DiscoveryTools    int  `json:"discovery_tools"`
	WriteToolsEnabled bool `json:"write_tools_enabled"`
}

// Snapshot is a point-in-time view of the tool inventory, shaped for the
// list_tools tool and the CLI.
type Snapshot struct {
	TotalTools   int                 `json:"total_tools"`
	EnabledTools int                 `json:"enabled_tools"`
	Categories   map[string][]string `json:"categories"`
	Tools        []ToolInfo          `json:"tools"`
	Summary      Summary             `json:"summary"`
}

// Discoverer produces a tool inventory. The runtime registry and the static
// scanner both implement it.
type Discoverer interface {
	Discover() (Snapshot, error)
}
