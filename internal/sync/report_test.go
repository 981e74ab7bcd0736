package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xplainable-io/xplainable-mcp-go/internal/common"
)

func TestRunEndToEnd(t *testing.T) {
	clientDir := writeFixtureClient(t)
	toolsDir := t.TempDir()
	logger := common.NewSilentLogger()

	report, err := Run(Options{
		ClientDir:         clientDir,
		ToolsDir:          toolsDir,
		WriteToolsEnabled: true,
		WriteFiles:        true,
	}, logger)
	require.NoError(t, err)

	assert.Equal(t, []string{"foo_bar", "foo_create_thing"}, report.ExpectedTools)
	assert.Equal(t, []string{"foo_bar", "foo_create_thing"}, report.ActualTools)
	assert.Empty(t, report.MissingTools)
	assert.Empty(t, report.ExtraTools)
	assert.Equal(t, []string{"foo_bar", "foo_create_thing"}, report.ImplementedTools)
	assert.Equal(t, map[string]int{"read": 1, "write": 1}, report.Categories)
	assert.Equal(t, 100.0, report.CoveragePercent)
	assert.Empty(t, report.Plan)
	assert.True(t, report.InSync)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "Foo.Broken", report.Failures[0].Method)
}

func TestRunReportsDriftWithoutWriting(t *testing.T) {
	clientDir := writeFixtureClient(t)
	toolsDir := t.TempDir()
	logger := common.NewSilentLogger()

	report, err := Run(Options{
		ClientDir:         clientDir,
		ToolsDir:          toolsDir,
		WriteToolsEnabled: true,
		WriteFiles:        false,
	}, logger)
	require.NoError(t, err)

	assert.False(t, report.InSync)
	assert.Equal(t, []string{"foo_bar", "foo_create_thing"}, report.MissingTools)
	assert.Empty(t, report.ActualTools)
	assert.Empty(t, report.ImplementedTools)
	assert.Equal(t, 0.0, report.CoveragePercent)
	assert.Equal(t, []PlanAction{
		{Action: "implement", Target: "foo_bar", Priority: "normal"},
		{Action: "implement", Target: "foo_create_thing", Priority: "normal"},
	}, report.Plan)
}

func TestRunFlagsExtraToolsWithSuggestions(t *testing.T) {
	clientDir := writeFixtureClient(t)
	toolsDir := t.TempDir()
	logger := common.NewSilentLogger()

	_, err := Run(Options{
		ClientDir:         clientDir,
		ToolsDir:          toolsDir,
		WriteToolsEnabled: true,
		WriteFiles:        true,
	}, logger)
	require.NoError(t, err)

	// A tool left behind after the client method was renamed.
	stale := Method{
		Module:      "foo",
		Name:        "barr",
		GoName:      "Barr",
		ClientField: "Foo",
		Description: "Stale wrapper for a renamed method.",
		Category:    "read",
		Params:      nil,
	}
	merger := &Merger{ToolsDir: toolsDir, Logger: logger}
	_, err = merger.Apply([]Method{stale})
	require.NoError(t, err)

	report, err := Run(Options{
		ClientDir:         clientDir,
		ToolsDir:          toolsDir,
		WriteToolsEnabled: true,
	}, logger)
	require.NoError(t, err)

	assert.False(t, report.InSync)
	require.Len(t, report.ExtraTools, 1)
	assert.Equal(t, "foo_barr", report.ExtraTools[0].Name)
	assert.Equal(t, "foo_bar", report.ExtraTools[0].Suggestion)
	assert.Contains(t, report.Plan, PlanAction{Action: "review", Target: "foo_barr", Priority: "normal"})
}

func TestBuildPlanOrdersDependencyUpdateFirst(t *testing.T) {
	report := &Report{
		ClientVersion:      "1.3.2",
		PlatformAPIVersion: "1.4.0",
		VersionStatus:      "mismatch",
		MissingTools:       []string{"foo_bar"},
		ExtraTools:         []ExtraTool{{Name: "foo_old"}},
	}

	plan := buildPlan(report)
	require.Len(t, plan, 3)
	assert.Equal(t, "update_dependency", plan[0].Action)
	assert.Equal(t, "high", plan[0].Priority)
	assert.Equal(t, PlanAction{Action: "implement", Target: "foo_bar", Priority: "normal"}, plan[1])
	assert.Equal(t, PlanAction{Action: "review", Target: "foo_old", Priority: "normal"}, plan[2])
}

func TestCoverageBounds(t *testing.T) {
	assert.Equal(t, 100.0, coverage(0, 0))
	assert.Equal(t, 100.0, coverage(10, 0))
	assert.Equal(t, 50.0, coverage(10, 5))
	assert.Equal(t, 0.0, coverage(10, 10))
}

func TestVersionStatus(t *testing.T) {
	assert.Equal(t, "unknown", versionStatus("1.3.2", ""))
	assert.Equal(t, "match", versionStatus("1.3.2", "1.3.2"))
	assert.Equal(t, "mismatch", versionStatus("1.3.2", "1.4.0"))
}

func TestValidateRejectsMalformedReport(t *testing.T) {
	report := &Report{
		ID:               "run-1",
		GeneratedAt:      "2026-08-23T00:00:00Z",
		ClientVersion:    "", // schema requires a non-empty version
		ExpectedTools:    []string{},
		ActualTools:      []string{},
		MissingTools:     []string{},
		ExtraTools:       []ExtraTool{},
		ImplementedTools: []string{},
		Categories:       map[string]int{},
		CoveragePercent:  100,
		Plan:             []PlanAction{},
		InSync:           true,
	}
	assert.Error(t, Validate(report))

	report.ClientVersion = "1.3.2"
	assert.NoError(t, Validate(report))
}

func TestMarkdownRendering(t *testing.T) {
	report := &Report{
		GeneratedAt:     "2026-08-23T00:00:00Z",
		ClientVersion:   "1.3.2",
		ExpectedTools:   []string{"foo_bar"},
		ActualTools:     []string{},
		MissingTools:    []string{"foo_bar"},
		ExtraTools:      []ExtraTool{{Name: "foo_barr", Suggestion: "foo_bar"}},
		CoveragePercent: 0,
		InSync:          false,
	}

	md := Markdown(report)

	assert.Contains(t, md, "# Sync Report")
	assert.Contains(t, md, "Status: drift detected")
	assert.Contains(t, md, "- `foo_bar`")
	assert.Contains(t, md, "did you mean `foo_bar`?")
}
