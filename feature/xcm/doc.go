// Package xcm merges cross-chain message configuration documents.
//
// Each versioned document is a JSON object of named sections with a
// declared merge strategy per section: fee and location maps union with
// overlay priority, the shared instruction vocabulary passes through
// from the base, and the chains list delegates to the collection merge.
// Files whose name mentions "dynamic" pair with the dynamic overlay
// document instead of the static one. Root-level documents have no
// overlay and are copied verbatim.
package xcm
