package merge_test

import (
	"testing"

	"chain-sync/core/merge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() merge.RuleSet {
	return merge.RuleSet{
		DisallowedIDs:    []string{"bad-id"},
		NameMarker:       "PAUSED",
		DisallowedOption: "testnet",
		AllowOverrides:   []string{"westend", "rococo"},
		Keywords:         []string{"quartz"},
	}
}

func TestRuleSet_Classify(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name         string
		entry        merge.Entry
		wantExcluded bool
		wantReason   merge.Reason
	}{
		{
			name:         "Clean entry kept",
			entry:        merge.NewEntry("1", "Alpha"),
			wantExcluded: false,
			wantReason:   merge.ReasonNone,
		},
		{
			name:         "Explicit id",
			entry:        merge.NewEntry("bad-id", "Looks Fine"),
			wantExcluded: true,
			wantReason:   merge.ReasonExplicitID,
		},
		{
			name:         "Marker in name",
			entry:        merge.NewEntry("2", "Beta PAUSED"),
			wantExcluded: true,
			wantReason:   merge.ReasonMarkerInName,
		},
		{
			name:         "Marker is case sensitive",
			entry:        merge.NewEntry("2", "Beta paused"),
			wantExcluded: false,
			wantReason:   merge.ReasonNone,
		},
		{
			name:         "Disallowed option",
			entry:        merge.NewEntry("3", "Some Net", "testnet"),
			wantExcluded: true,
			wantReason:   merge.ReasonDisallowedOption,
		},
		{
			name:         "Disallowed option overridden by name",
			entry:        merge.NewEntry("3", "Westend Asset Hub", "testnet"),
			wantExcluded: false,
			wantReason:   merge.ReasonNone,
		},
		{
			name:         "Allow override is case insensitive",
			entry:        merge.NewEntry("3", "ROCOCO People", "testnet"),
			wantExcluded: false,
			wantReason:   merge.ReasonNone,
		},
		{
			name:         "Keyword match is case insensitive",
			entry:        merge.NewEntry("x", "Quartz Network"),
			wantExcluded: true,
			wantReason:   merge.ReasonKeywordMatch,
		},
		{
			name:         "Explicit id wins over later rules",
			entry:        merge.NewEntry("bad-id", "Quartz PAUSED", "testnet"),
			wantExcluded: true,
			wantReason:   merge.ReasonExplicitID,
		},
		{
			name:         "Marker wins over option and keyword",
			entry:        merge.NewEntry("5", "Quartz PAUSED", "testnet"),
			wantExcluded: true,
			wantReason:   merge.ReasonMarkerInName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			excluded, reason := rules.Classify(tt.entry)
			assert.Equal(t, tt.wantExcluded, excluded)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestRuleSet_ClassifyIsDeterministic(t *testing.T) {
	rules := testRules()
	entry := merge.NewEntry("3", "Some Net", "testnet")

	first, firstReason := rules.Classify(entry)
	for i := 0; i < 10; i++ {
		excluded, reason := rules.Classify(entry)
		assert.Equal(t, first, excluded)
		assert.Equal(t, firstReason, reason)
	}
}

func TestRuleSet_FilterReportsEveryExclusion(t *testing.T) {
	rules := testRules()
	base := merge.Collection{
		merge.NewEntry("1", "Alpha"),
		merge.NewEntry("2", "Beta PAUSED"),
		merge.NewEntry("bad-id", "Gamma"),
		merge.NewEntry("4", "Quartz Network"),
		merge.NewEntry("5", "Delta"),
	}

	kept, report := rules.Filter(base)

	assert.Equal(t, []string{"1", "5"}, kept.IDs())
	assert.Equal(t, 2, report.Kept)
	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 1, report.Counts[merge.ReasonMarkerInName])
	assert.Equal(t, 1, report.Counts[merge.ReasonExplicitID])
	assert.Equal(t, 1, report.Counts[merge.ReasonKeywordMatch])

	require.Len(t, report.Excluded, 3)
	assert.Equal(t, merge.ExcludedEntry{Name: "Beta PAUSED", Reason: merge.ReasonMarkerInName}, report.Excluded[0])
	assert.Equal(t, merge.ExcludedEntry{Name: "Gamma", Reason: merge.ReasonExplicitID}, report.Excluded[1])
	assert.Equal(t, merge.ExcludedEntry{Name: "Quartz Network", Reason: merge.ReasonKeywordMatch}, report.Excluded[2])
}

// Filtered merge end to end: base filtered first, then overlay wins on id.
func TestFilterThenMergeScenario(t *testing.T) {
	rules := testRules()
	base := merge.Collection{
		merge.NewEntry("1", "Alpha"),
		merge.NewEntry("2", "Beta PAUSED"),
	}
	overlay := merge.Collection{
		merge.NewEntry("1", "Alpha-Overlay"),
	}

	kept, _ := rules.Filter(base)
	merged := merge.Collections(kept, overlay)

	require.Len(t, merged, 1)
	assert.Equal(t, "1", merged[0].ChainID)
	assert.Equal(t, "Alpha-Overlay", merged[0].Name)
}

func TestRuleSet_EmptyRulesKeepEverything(t *testing.T) {
	base := merge.Collection{
		merge.NewEntry("1", "Alpha PAUSED", "testnet"),
	}

	kept, report := merge.RuleSet{}.Filter(base)

	assert.Len(t, kept, 1)
	assert.Zero(t, report.Total())
}

func TestDefaultRules(t *testing.T) {
	rules := merge.DefaultRules()

	excluded, reason := rules.Classify(merge.NewEntry("x", "Quartz Network"))
	assert.True(t, excluded)
	assert.Equal(t, merge.ReasonKeywordMatch, reason)

	excluded, _ = rules.Classify(merge.NewEntry("y", "Westend", "testnet"))
	assert.False(t, excluded)
}
