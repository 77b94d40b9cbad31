// Package merge implements the merge engine: the precedence rules that
// combine an upstream base dataset with a locally curated overlay.
//
// Three merge shapes exist:
//
//  1. Collection merge (Collections): overlay entries first, base entries
//     after, base entries losing every identifier conflict outright.
//  2. Section document merge (Documents): a declared rule per named
//     section chooses between key-union with overlay priority, base
//     passthrough, or a delegated collection merge.
//  3. Object merge (ShallowObjects, DeepObjects): key-wise union for flat
//     and one-level nested configuration objects.
//
// # Exclusion Filter
//
// RuleSet classifies base entries as kept or excluded before a merge.
// Rules short-circuit in a fixed order (explicit id, name marker,
// disallowed option, keyword) and each pass returns a FilterReport with
// per-reason counts. The filter never applies to overlay entries: the
// overlay is trusted by construction.
//
// All operations are pure; inputs are never mutated.
package merge
