// Package icons overlays the icon asset trees.
//
// Icons are opaque files merged by relative path in two passes: the base
// tree is copied wherever the output lacks a file, then the overlay tree
// is copied over the top unconditionally. Nothing is parsed and nothing
// is deleted; the overlay wins every path collision.
package icons
