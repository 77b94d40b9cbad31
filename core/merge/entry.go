package merge

import (
	"encoding/json"
	"fmt"
)

// Entry is one record of a chain collection. Only the identifier and the
// fields the exclusion filter inspects are decoded; everything else rides
// along as raw JSON so writes preserve the upstream field order exactly.
type Entry struct {
	// ChainID is the unique identifier within a collection.
	ChainID string

	// Name is the display name.
	Name string

	// Options is the set of string flags attached to the entry.
	Options []string

	raw json.RawMessage
}

// NewEntry builds a synthetic entry. Intended for overlay fixtures and
// tests; entries loaded from disk carry their original raw form instead.
func NewEntry(chainID, name string, options ...string) Entry {
	return Entry{ChainID: chainID, Name: name, Options: options}
}

// HasOption reports whether the entry carries the given option flag.
func (e Entry) HasOption(name string) bool {
	for _, opt := range e.Options {
		if opt == name {
			return true
		}
	}
	return false
}

// UnmarshalJSON decodes the known fields and retains the full raw form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var probe struct {
		ChainID string   `json:"chainId"`
		Name    string   `json:"name"`
		Options []string `json:"options"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	e.ChainID = probe.ChainID
	e.Name = probe.Name
	e.Options = probe.Options
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the entry back in its original raw form when it was
// loaded from disk, or a minimal wire form for synthetic entries.
func (e Entry) MarshalJSON() ([]byte, error) {
	if len(e.raw) != 0 {
		return e.raw, nil
	}
	type wire struct {
		ChainID string   `json:"chainId"`
		Name    string   `json:"name,omitempty"`
		Options []string `json:"options,omitempty"`
	}
	return marshalNoEscape(wire{ChainID: e.ChainID, Name: e.Name, Options: e.Options})
}

// Collection is an ordered sequence of entries. Order is significant: it
// determines display priority downstream.
type Collection []Entry

// Validate checks the one structural invariant a collection must hold:
// every entry has a non-empty identifier.
func (c Collection) Validate() error {
	for i, e := range c {
		if e.ChainID == "" {
			return fmt.Errorf("entry %d (%q): missing chainId", i, e.Name)
		}
	}
	return nil
}

// IDs returns the identifiers in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, e := range c {
		ids[i] = e.ChainID
	}
	return ids
}
