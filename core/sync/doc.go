// Package sync is the tree synchronizer: it orchestrates the merge
// engine once per logical resource and collects per-resource outcomes.
//
// # Model
//
// A Resource is one family of files (chain lists, cross-chain message
// sections, icons, staking config). The Runner stats the upstream root
// (the only fatal check), then lets every registered resource merge
// itself against the overlay tree. Resources report outcomes instead of
// returning errors: a missing base file is a skip, a malformed or
// unwritable file is a failure, and neither stops the run.
//
// # Fan-out
//
// A merged value may be written to several destinations (version path,
// android compatibility path, root compatibility copy). FanOut applies
// the writer once per declared destination and reports each write
// separately.
//
// # Upstream refresh
//
// Refresh updates the upstream git submodule before a run when asked to.
// Its failure never blocks the merge phase.
package sync
