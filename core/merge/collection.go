package merge

// Collections merges a base collection with an overlay collection.
//
// Overlay entries come first in their original relative order, then the
// base entries in theirs. A base entry whose identifier collides with an
// overlay entry is dropped entirely; there is no field-level merge of a
// conflicting pair. The merge is stable and never mutates its inputs.
func Collections(base, overlay Collection) Collection {
	overlayIDs := make(map[string]struct{}, len(overlay))
	for _, e := range overlay {
		overlayIDs[e.ChainID] = struct{}{}
	}

	merged := make(Collection, 0, len(base)+len(overlay))
	merged = append(merged, overlay...)
	for _, e := range base {
		if _, taken := overlayIDs[e.ChainID]; taken {
			continue
		}
		merged = append(merged, e)
	}
	return merged
}
