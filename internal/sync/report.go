package sync

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
	"github.com/xplainable-io/xplainable-mcp-go/internal/registry"
	"github.com/xplainable-io/xplainable-mcp-go/internal/xplainable"
)

//go:embed report_schema.json
var reportSchemaJSON string

// ExtraTool is a registered tool with no matching client method. The
// suggestion names the closest expected tool, usually pointing at a rename.
type ExtraTool struct {
	Name       string `json:"name"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PlanAction is one step of the remediation plan: implement a missing
// wrapper, review an extra one, or update the client library first when the
// platform reports a newer version.
type PlanAction struct {
	Action   string `json:"action"`
	Target   string `json:"target"`
	Priority string `json:"priority"`
}

// Report is the outcome of one sync run, comparing the tools the client
// expects against the tools the committed files declare.
type Report struct {
	ID                 string          `json:"id"`
	GeneratedAt        string          `json:"generated_at"`
	ClientVersion      string          `json:"client_version"`
	PlatformAPIVersion string          `json:"platform_api_version,omitempty"`
	VersionStatus      string          `json:"version_status,omitempty"`
	ExpectedTools      []string        `json:"expected_tools"`
	ActualTools        []string        `json:"actual_tools"`
	MissingTools       []string        `json:"missing_tools"`
	ExtraTools         []ExtraTool     `json:"extra_tools"`
	ImplementedTools   []string        `json:"implemented_tools"`
	Categories         map[string]int  `json:"categories"`
	CoveragePercent    float64         `json:"coverage_percent"`
	Plan               []PlanAction    `json:"plan"`
	Failures           []MethodFailure `json:"introspection_failures,omitempty"`
	MergeResults       []MergeResult   `json:"merge_results,omitempty"`
	InSync             bool            `json:"in_sync"`
}

// Options configures a sync run.
type Options struct {
	ClientDir          string
	ToolsDir           string
	WriteToolsEnabled  bool
	WriteFiles         bool // apply merges rather than only reporting
	Force              bool // replace unchanged blocks too
	PlatformAPIVersion string
}

// Run executes the sync pipeline: introspect the client, optionally merge
// generated blocks into the tool files, then compare expected against
// actual and build the report.
func Run(opts Options, logger *common.Logger) (*Report, error) {
	intro, err := IntrospectClient(opts.ClientDir, logger)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:            uuid.New().String(),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		ClientVersion: xplainable.Version,
		ExpectedTools: intro.ToolNames(),
		Failures:      intro.Failures,
	}
	report.PlatformAPIVersion = opts.PlatformAPIVersion
	report.VersionStatus = versionStatus(xplainable.Version, opts.PlatformAPIVersion)

	if opts.WriteFiles {
		merger := &Merger{ToolsDir: opts.ToolsDir, Force: opts.Force, Logger: logger}
		results, err := merger.Apply(intro.Methods)
		if err != nil {
			return nil, err
		}
		report.MergeResults = results
	}

	scanner := &registry.StaticScanner{Dir: opts.ToolsDir, WriteToolsEnabled: opts.WriteToolsEnabled}
	actual, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan tool files: %w", err)
	}
	report.ActualTools = []string{}
	report.Categories = map[string]int{}
	for _, info := range actual {
		report.ActualTools = append(report.ActualTools, info.Name)
		report.Categories[string(info.Category)]++
	}
	sort.Strings(report.ActualTools)

	report.MissingTools = difference(report.ExpectedTools, report.ActualTools)
	report.ExtraTools = extraTools(report.ActualTools, report.ExpectedTools)
	report.ImplementedTools = difference(report.ExpectedTools, report.MissingTools)
	report.CoveragePercent = coverage(len(report.ExpectedTools), len(report.MissingTools))
	report.Plan = buildPlan(report)
	report.InSync = len(report.MissingTools) == 0 && len(report.ExtraTools) == 0

	if err := Validate(report); err != nil {
		return nil, fmt.Errorf("sync report failed schema validation: %w", err)
	}
	return report, nil
}

// coverage returns the share of expected tools present, as a percentage.
// An empty expected set is full coverage.
func coverage(expected, missing int) float64 {
	if expected == 0 {
		return 100
	}
	return float64(expected-missing) / float64(expected) * 100
}

func versionStatus(clientVersion, platformVersion string) string {
	if platformVersion == "" {
		return "unknown"
	}
	if clientVersion == platformVersion {
		return "match"
	}
	return "mismatch"
}

// difference returns the elements of a not present in b. Both inputs must
// be sorted; the result is sorted.
func difference(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := []string{}
	for _, s := range a {
		if _, ok := set[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// extraTools lists actual tools with no expected counterpart, each with a
// fuzzy-matched suggestion when one is close enough.
func extraTools(actual, expected []string) []ExtraTool {
	set := make(map[string]struct{}, len(expected))
	for _, s := range expected {
		set[s] = struct{}{}
	}
	out := []ExtraTool{}
	for _, name := range actual {
		if _, ok := set[name]; ok {
			continue
		}
		out = append(out, ExtraTool{Name: name, Suggestion: closestMatch(name, expected)})
	}
	return out
}

// closestMatch returns the nearest expected tool name by edit distance, or
// empty when nothing is plausibly close.
func closestMatch(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, candidate := range candidates {
		d := fuzzy.LevenshteinDistance(name, candidate)
		if bestDist == -1 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if best == "" || bestDist > len(name)/2 {
		return ""
	}
	return best
}

// buildPlan lists the remediation steps in priority order. A client library
// update always comes first: regenerating against a stale client would bake
// the drift in.
func buildPlan(r *Report) []PlanAction {
	plan := []PlanAction{}
	if r.VersionStatus == "mismatch" {
		plan = append(plan, PlanAction{
			Action:   "update_dependency",
			Target:   "xplainable client " + r.ClientVersion + " -> " + r.PlatformAPIVersion,
			Priority: "high",
		})
	}
	for _, name := range r.MissingTools {
		plan = append(plan, PlanAction{Action: "implement", Target: name, Priority: "normal"})
	}
	for _, extra := range r.ExtraTools {
		plan = append(plan, PlanAction{Action: "review", Target: extra.Name, Priority: "normal"})
	}
	return plan
}

// Validate checks a report against the embedded JSON schema.
func Validate(report *Report) error {
	schema, err := jsonschema.CompileString("report_schema.json", reportSchemaJSON)
	if err != nil {
		return fmt.Errorf("invalid embedded schema: %w", err)
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

// Markdown renders the report as a human-readable summary.
func Markdown(r *Report) string {
	var b bytes.Buffer
	b.WriteString("# Sync Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt)
	fmt.Fprintf(&b, "Client version: %s\n", r.ClientVersion)
	if r.PlatformAPIVersion != "" {
		fmt.Fprintf(&b, "Platform API version: %s (%s)\n", r.PlatformAPIVersion, r.VersionStatus)
	}
	fmt.Fprintf(&b, "\nCoverage: %.1f%% (%d of %d expected tools)\n\n",
		r.CoveragePercent, len(r.ExpectedTools)-len(r.MissingTools), len(r.ExpectedTools))

	if r.InSync {
		b.WriteString("Status: in sync\n")
	} else {
		b.WriteString("Status: drift detected\n")
	}

	if len(r.MissingTools) > 0 {
		b.WriteString("\n## Missing tools\n\n")
		for _, name := range r.MissingTools {
			fmt.Fprintf(&b, "- `%s`\n", name)
		}
	}
	if len(r.ExtraTools) > 0 {
		b.WriteString("\n## Extra tools\n\n")
		for _, extra := range r.ExtraTools {
			if extra.Suggestion != "" {
				fmt.Fprintf(&b, "- `%s` (did you mean `%s`?)\n", extra.Name, extra.Suggestion)
			} else {
				fmt.Fprintf(&b, "- `%s`\n", extra.Name)
			}
		}
	}
	if len(r.Plan) > 0 {
		b.WriteString("\n## Plan\n\n")
		for _, action := range r.Plan {
			if action.Priority == "high" {
				fmt.Fprintf(&b, "- **%s**: %s\n", action.Action, action.Target)
			} else {
				fmt.Fprintf(&b, "- %s: `%s`\n", action.Action, action.Target)
			}
		}
	}
	if len(r.Failures) > 0 {
		b.WriteString("\n## Introspection failures\n\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "- `%s`: %s\n", f.Method, f.Reason)
		}
	}
	if len(r.MergeResults) > 0 {
		b.WriteString("\n## Merge results\n\n")
		b.WriteString("| File | Tool | Action |\n")
		b.WriteString("|------|------|--------|\n")
		for _, m := range r.MergeResults {
			action := string(m.Action)
			if m.Reason != "" {
				action += " (" + m.Reason + ")"
			}
			fmt.Fprintf(&b, "| %s | `%s` | %s |\n", m.File, m.Tool, action)
		}
	}
	return b.String()
}
