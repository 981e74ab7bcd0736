package registry

import (
	"sort"
	"sync"
)

// Registry is the runtime tool inventory. Tools are recorded as they are
// registered with the MCP server, so the registry only ever contains tools
// that are actually callable in this process.
type Registry struct {
	mu                sync.RWMutex
	tools             map[string]ToolInfo
	order             []string
	writeToolsEnabled bool
}

// New creates an empty runtime registry.
func New(writeToolsEnabled bool) *Registry {
	return &Registry{
		tools:             make(map[string]ToolInfo),
		writeToolsEnabled: writeToolsEnabled,
	}
}

// WriteToolsEnabled reports whether write-category tools are exposed.
func (r *Registry) WriteToolsEnabled() bool {
	return r.writeToolsEnabled
}

// Record adds a tool to the inventory. Re-recording a name replaces the
// previous entry.
func (r *Registry) Record(info ToolInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[info.Name]; !exists {
		r.order = append(r.order, info.Name)
	}
	info.Enabled = true
	r.tools[info.Name] = info
}

// Get returns the record for a tool name.
func (r *Registry) Get(name string) (ToolInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.tools[name]
	return info, ok
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tools returns all records sorted by tool name.
func (r *Registry) Tools() []ToolInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tools := make([]ToolInfo, 0, len(r.tools))
	for _, info := range r.tools {
		tools = append(tools, info)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// Snapshot builds the inventory view served by list_tools.
func (r *Registry) Snapshot() Snapshot {
	tools := r.Tools()
	return buildSnapshot(tools, r.writeToolsEnabled)
}

// Discover implements Discoverer.
func (r *Registry) Discover() (Snapshot, error) {
	return r.Snapshot(), nil
}

// buildSnapshot assembles a Snapshot from a sorted tool list.
func buildSnapshot(tools []ToolInfo, writeToolsEnabled bool) Snapshot {
	snap := Snapshot{
		TotalTools: len(tools),
		Categories: make(map[string][]string),
		Tools:      tools,
		Summary:    Summary{WriteToolsEnabled: writeToolsEnabled},
	}
	for _, info := range tools {
		if info.Enabled {
			snap.EnabledTools++
		}
		cat := string(info.Category)
		snap.Categories[cat] = append(snap.Categories[cat], info.Name)
		switch info.Category {
		case CategoryRead:
			snap.Summary.ReadTools++
		case CategoryWrite:
			snap.Summary.WriteTools++
		case CategoryAdmin:
			snap.Summary.AdminTools++
		case CategoryDiscovery:
			snap.Summary.DiscoveryTools++
		}
	}
	return snap
}
