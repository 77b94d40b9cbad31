package merge

import "strings"

// Reason classifies why an entry was excluded from a base collection.
type Reason string

const (
	// ReasonNone means the entry is kept.
	ReasonNone Reason = "none"
	// ReasonExplicitID means the identifier is on the disallowed-id list.
	ReasonExplicitID Reason = "explicit_id"
	// ReasonMarkerInName means the name carries the exclusion marker.
	ReasonMarkerInName Reason = "marker_in_name"
	// ReasonDisallowedOption means the entry carries a disallowed option
	// flag and no allow-override substring matched the name.
	ReasonDisallowedOption Reason = "disallowed_option"
	// ReasonKeywordMatch means the lower-cased name contains a keyword
	// from the exclusion list.
	ReasonKeywordMatch Reason = "keyword_match"
)

// RuleSet is an immutable set of exclusion rules. It is injected into the
// filter rather than read from package state so tests can supply synthetic
// rules.
type RuleSet struct {
	// DisallowedIDs lists identifiers excluded unconditionally.
	DisallowedIDs []string

	// NameMarker is a substring whose presence in the name (case-sensitive)
	// excludes the entry. Typically an upstream status tag.
	NameMarker string

	// DisallowedOption is an option flag that excludes an entry unless the
	// name matches one of AllowOverrides.
	DisallowedOption string

	// AllowOverrides are case-insensitive name substrings that exempt an
	// entry from the DisallowedOption rule.
	AllowOverrides []string

	// Keywords are case-insensitive name substrings that exclude an entry.
	Keywords []string
}

// DefaultRules returns the rule set applied to upstream chain collections.
func DefaultRules() RuleSet {
	return RuleSet{
		DisallowedIDs: []string{
			"91bc6e169807aaa54802737e1c504b2577d4fafedd5a02c10293b1cd60e39527",
			"e143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e",
		},
		NameMarker:       "PAUSED",
		DisallowedOption: "testnet",
		AllowOverrides:   []string{"westend", "rococo"},
		Keywords:         []string{"quartz", "disabled"},
	}
}

// Classify decides whether an entry is excluded and why. Rules short
// circuit in a fixed order: explicit id, name marker, disallowed option,
// keyword. The decision depends only on the entry's own fields.
func (r RuleSet) Classify(e Entry) (bool, Reason) {
	for _, id := range r.DisallowedIDs {
		if e.ChainID == id {
			return true, ReasonExplicitID
		}
	}

	if r.NameMarker != "" && strings.Contains(e.Name, r.NameMarker) {
		return true, ReasonMarkerInName
	}

	if r.DisallowedOption != "" && e.HasOption(r.DisallowedOption) && !r.nameOverridesOption(e.Name) {
		return true, ReasonDisallowedOption
	}

	lower := strings.ToLower(e.Name)
	for _, kw := range r.Keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true, ReasonKeywordMatch
		}
	}

	return false, ReasonNone
}

func (r RuleSet) nameOverridesOption(name string) bool {
	lower := strings.ToLower(name)
	for _, allow := range r.AllowOverrides {
		if allow != "" && strings.Contains(lower, strings.ToLower(allow)) {
			return true
		}
	}
	return false
}

// ExcludedEntry records one excluded entry for reporting.
type ExcludedEntry struct {
	Name   string `json:"name"`
	Reason Reason `json:"reason"`
}

// FilterReport aggregates the exclusions of one filter pass.
type FilterReport struct {
	// Kept is the number of entries that passed the filter.
	Kept int `json:"kept"`

	// Counts breaks excluded entries down by reason.
	Counts map[Reason]int `json:"counts"`

	// Excluded lists every excluded entry with its reason, in input order.
	Excluded []ExcludedEntry `json:"excluded"`
}

// Total returns the number of excluded entries.
func (r FilterReport) Total() int {
	return len(r.Excluded)
}

// Filter returns the entries of c that pass the rule set, preserving
// order, together with a report of everything removed. The input is not
// modified. The filter is meant for base collections only; overlay
// collections are curated locally and bypass it.
func (r RuleSet) Filter(c Collection) (Collection, FilterReport) {
	report := FilterReport{Counts: make(map[Reason]int)}
	kept := make(Collection, 0, len(c))

	for _, e := range c {
		excluded, reason := r.Classify(e)
		if excluded {
			report.Counts[reason]++
			report.Excluded = append(report.Excluded, ExcludedEntry{Name: e.Name, Reason: reason})
			continue
		}
		kept = append(kept, e)
	}

	report.Kept = len(kept)
	return kept, report
}
