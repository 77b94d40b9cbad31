// Package jsonio is the loader/writer boundary of the merge pipeline.
//
// Loading is a pure pass-through: files are read into merge.Collection or
// document.Object without transformation. Errors distinguish the two
// failure modes the synchronizer cares about:
//
//   - absent file (IsNotExist): the resource may fall back or be skipped
//   - present but corrupt (IsMalformed): the resource fails; corrupt data
//     is never substituted with empty data
//
// Saving produces the fixed output format downstream clients expect:
// two-space indentation, UTF-8 with non-ASCII characters unescaped, key
// insertion order preserved, trailing newline.
package jsonio
