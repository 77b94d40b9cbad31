package sync

import (
	"context"

	"chain-sync/core/merge"

	"go.uber.org/zap"
)

// Config holds the tree layout and upstream settings for sync runs.
type Config struct {
	// BaseRoot is the upstream dataset checkout (git submodule).
	BaseRoot string `mapstructure:"base_root" default:"nova-base"`
	// OverlayRoot is the locally curated overlay dataset.
	OverlayRoot string `mapstructure:"overlay_root" default:"overlay"`
	// OutputRoot is where merged trees are written.
	OutputRoot string `mapstructure:"output_root" default:"."`
	// Submodule is the git submodule name used by the upstream refresh.
	Submodule string `mapstructure:"submodule" default:"nova-base"`
	// Version is the default version selector when --all is not given.
	Version string `mapstructure:"version" default:"v22"`
}

// Options controls one sync run.
type Options struct {
	// Version restricts the run to one version subdirectory.
	Version string

	// All processes every discovered version, ignoring Version.
	All bool

	// IncludeExcluded disables the exclusion filter on base collections.
	IncludeExcluded bool
}

// Runtime bundles everything a resource needs during a run: the three
// tree roots, the run logger, run options and the exclusion rules.
// Resources only read it.
type Runtime struct {
	Base    string
	Overlay string
	Output  string
	Log     *zap.Logger
	Opts    Options
	Rules   merge.RuleSet
}

// Resource is one logical resource family (chains, xcm, icons, ...).
// Sync merges the family and returns one outcome per file-level resource
// it attempted. Resources never abort the run; failures are reported as
// outcomes.
type Resource interface {
	Name() string
	Sync(ctx context.Context, rt *Runtime) []Outcome
}

// Status is the terminal state of one resource.
type Status string

const (
	// StatusMerged means the resource was merged and written.
	StatusMerged Status = "merged"
	// StatusSkipped means the resource had no base file to merge against.
	StatusSkipped Status = "skipped"
	// StatusFailed means the resource had data but could not be merged or
	// written (malformed input, write failure).
	StatusFailed Status = "failed"
)

// Outcome records the terminal state of one resource.
type Outcome struct {
	// Resource names the resource, usually by its output path.
	Resource string `json:"resource"`

	// Status is the terminal state.
	Status Status `json:"status"`

	// Reason explains a skip or failure. Empty for merged resources.
	Reason string `json:"reason,omitempty"`
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	// RunID correlates the summary with the run's log lines.
	RunID string `json:"run_id"`

	// Outcomes lists every attempted resource in processing order.
	Outcomes []Outcome `json:"outcomes"`
}

// Add appends outcomes to the summary.
func (s *Summary) Add(outs ...Outcome) {
	s.Outcomes = append(s.Outcomes, outs...)
}

// Count returns the number of outcomes with the given status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Merged returns the number of merged resources.
func (s *Summary) Merged() int { return s.Count(StatusMerged) }

// Skipped returns the number of skipped resources.
func (s *Summary) Skipped() int { return s.Count(StatusSkipped) }

// Failed returns the number of failed resources.
func (s *Summary) Failed() int { return s.Count(StatusFailed) }

// ByStatus returns the outcomes with the given status, in order.
func (s *Summary) ByStatus(status Status) []Outcome {
	var outs []Outcome
	for _, o := range s.Outcomes {
		if o.Status == status {
			outs = append(outs, o)
		}
	}
	return outs
}
