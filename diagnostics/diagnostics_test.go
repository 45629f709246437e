package diagnostics_test

import (
	"testing"

	"github.com/shyptr/datafixer/diagnostics"
	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/rewrite"
	"github.com/shyptr/datafixer/types"
	"github.com/shyptr/datafixer/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRuleRecordsOnlyMatches(t *testing.T) {
	o := jsonops.Ops{}
	rule := rewrite.RenameField[any]("old", "new")

	var apps []diagnostics.RuleApplication
	opts := diagnostics.Options{CaptureRuleDetails: true, CaptureSnapshots: true}
	wrapped := diagnostics.WrapRule(rule, opts, diagnostics.DefaultSnapshot[any](false), func(a diagnostics.RuleApplication) {
		apps = append(apps, a)
	})

	matching := types.Of[any]("x", nil, ops.Of[any](o, jsonops.NewMap(ops.MapEntry[any]{Key: "old", Value: "v"})))
	wrapped.Apply(matching)
	require.Len(t, apps, 1)
	assert.NotEmpty(t, apps[0].Before)
	assert.NotEmpty(t, apps[0].After)

	nonMatching := types.Of[any]("x", nil, ops.Of[any](o, jsonops.NewMap()))
	wrapped.Apply(nonMatching)
	assert.Len(t, apps, 1, "identity application must not be recorded")
}

func TestWrapRulePassthroughWhenDetailsDisabled(t *testing.T) {
	rule := rewrite.RenameField[any]("old", "new")
	wrapped := diagnostics.WrapRule(rule, diagnostics.Options{}, nil, func(diagnostics.RuleApplication) {
		t.Fatal("sink should never be called when CaptureRuleDetails is false")
	})
	assert.Equal(t, rule.Name, wrapped.Name)
}

func TestRecorderFinishProducesOrderedReport(t *testing.T) {
	v1, _ := version.New(1)
	v2, _ := version.New(2)
	v3, _ := version.New(3)

	rec := diagnostics.NewRecorder(diagnostics.Options{CaptureRuleDetails: true}, "player", v1, v3)
	idx1 := rec.BeginFix("fix-a", v1, v2)
	rec.RecordRuleApplication(idx1, diagnostics.RuleApplication{RuleName: "rename_field"})
	rec.FinishFix(idx1, "", "")

	idx2 := rec.BeginFix("fix-b", v2, v3)
	rec.FinishFix(idx2, "", "")

	rec.RecordWarning("something to watch")
	rec.TouchType("player")
	rec.TouchType("player") // duplicate, should not double-record

	report := rec.Finish("before", "after")
	require.Len(t, report.FixExecutions, 2)
	assert.Equal(t, "fix-a", report.FixExecutions[0].Name)
	assert.Equal(t, "fix-b", report.FixExecutions[1].Name)
	assert.Len(t, report.FixExecutions[0].RuleApplications, 1)
	assert.Equal(t, []string{"something to watch"}, report.Warnings)
	assert.Equal(t, []types.TypeID{"player"}, report.TouchedTypes)
	assert.Equal(t, "before", report.Before)
	assert.Equal(t, "after", report.After)
}
