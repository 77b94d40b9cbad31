// Package staking merges the global staking configuration the client
// fetches at runtime.
//
// The base document is assembled from two upstream files, the general
// global config and the staking config, shallow-unioned with the staking
// file winning shared keys. The curated overlay is then deep-merged on
// top: nested objects merge key-wise one level deep, anything else is
// replaced. Production and _dev variants are built the same way, and the
// upstream validator lists pass through verbatim.
package staking
