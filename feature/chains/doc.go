// Package chains merges chain list files.
//
// For every version subdirectory under <base>/chains the upstream
// chains.json is filtered through the exclusion rules, merged with the
// curated overlay list (overlay entries first, winning identifier
// conflicts outright) and written to:
//
//   - chains/<version>/chains.json
//   - chains/<version>/android/chains.json (compatibility duplicate)
//   - chains/chains.json (root compatibility copy, newest version)
//
// chains_dev.json is handled the same way where the base provides one,
// and the base's preConfigured directory is carried over verbatim.
//
// A version-specific base file falls back to the root-level base file;
// when neither exists the version is skipped, not failed.
package chains
