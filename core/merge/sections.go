package merge

import (
	"bytes"
	"encoding/json"
	"fmt"

	"chain-sync/core/document"
)

// Strategy selects how one named section of a section document merges.
type Strategy int

const (
	// OverlayWins unions the key sets of both sections; on a shared key
	// the overlay's value replaces the base's value entirely.
	OverlayWins Strategy = iota

	// BasePassthrough keeps the base section verbatim. If the overlay
	// also defines the section it is shallow-merged on top; if only the
	// overlay defines it, the section stays absent.
	BasePassthrough

	// CollectionMerge treats the section as a collection of entries and
	// applies the overlay-first identifier merge. An absent section on
	// either side counts as an empty collection, so the merged section
	// is always emitted.
	CollectionMerge
)

// SectionRule binds a section name to its merge strategy. The rule list
// of a document type is declared once and drives the whole merge; the
// output contains exactly the declared sections, in declared order.
type SectionRule struct {
	Name     string
	Strategy Strategy
}

// Documents merges two section documents under the given rules. A nil
// input is treated as an empty document. Inputs are never modified.
func Documents(base, overlay *document.Object, rules []SectionRule) (*document.Object, error) {
	merged := document.New()

	for _, rule := range rules {
		baseRaw, baseOK := base.Get(rule.Name)
		overlayRaw, overlayOK := overlay.Get(rule.Name)

		switch rule.Strategy {
		case OverlayWins:
			if !baseOK && !overlayOK {
				continue
			}
			out, err := shallowMergeRaw(baseRaw, overlayRaw)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", rule.Name, err)
			}
			merged.Set(rule.Name, out)

		case BasePassthrough:
			if !baseOK {
				continue
			}
			if !overlayOK {
				merged.Set(rule.Name, baseRaw)
				continue
			}
			out, err := shallowMergeRaw(baseRaw, overlayRaw)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", rule.Name, err)
			}
			merged.Set(rule.Name, out)

		case CollectionMerge:
			baseColl, err := decodeCollection(baseRaw)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", rule.Name, err)
			}
			overlayColl, err := decodeCollection(overlayRaw)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", rule.Name, err)
			}
			out, err := marshalNoEscape(Collections(baseColl, overlayColl))
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", rule.Name, err)
			}
			merged.Set(rule.Name, out)

		default:
			return nil, fmt.Errorf("section %q: unknown strategy %d", rule.Name, rule.Strategy)
		}
	}

	return merged, nil
}

// ShallowObjects unions the key sets of base and overlay; overlay values
// replace base values wholesale. Inputs are not modified.
func ShallowObjects(base, overlay *document.Object) *document.Object {
	merged := base.Clone()
	for _, key := range overlay.Keys() {
		v, _ := overlay.Get(key)
		merged.Set(key, v)
	}
	return merged
}

// DeepObjects merges overlay onto base one level deep: where both values
// under a key are JSON objects they are shallow-merged key-wise, any
// other value is replaced by the overlay's. Inputs are not modified.
func DeepObjects(base, overlay *document.Object) *document.Object {
	merged := base.Clone()
	for _, key := range overlay.Keys() {
		overlayVal, _ := overlay.Get(key)
		baseVal, ok := merged.Get(key)
		if !ok || !isObject(baseVal) || !isObject(overlayVal) {
			merged.Set(key, overlayVal)
			continue
		}

		var baseObj, overlayObj document.Object
		if err := json.Unmarshal(baseVal, &baseObj); err != nil {
			merged.Set(key, overlayVal)
			continue
		}
		if err := json.Unmarshal(overlayVal, &overlayObj); err != nil {
			merged.Set(key, overlayVal)
			continue
		}
		out, err := marshalNoEscape(ShallowObjects(&baseObj, &overlayObj))
		if err != nil {
			merged.Set(key, overlayVal)
			continue
		}
		merged.Set(key, out)
	}
	return merged
}

// shallowMergeRaw decodes two raw JSON object sections and unions their
// keys, overlay winning. An absent side counts as empty.
func shallowMergeRaw(baseRaw, overlayRaw json.RawMessage) (json.RawMessage, error) {
	base, err := decodeObject(baseRaw)
	if err != nil {
		return nil, err
	}
	overlay, err := decodeObject(overlayRaw)
	if err != nil {
		return nil, err
	}
	return marshalNoEscape(ShallowObjects(base, overlay))
}

// marshalNoEscape marshals without HTML escaping so names containing
// characters like '&' survive intermediate re-encoding.
func marshalNoEscape(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func decodeObject(raw json.RawMessage) (*document.Object, error) {
	if len(raw) == 0 {
		return document.New(), nil
	}
	var obj document.Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

func decodeCollection(raw json.RawMessage) (Collection, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var c Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
