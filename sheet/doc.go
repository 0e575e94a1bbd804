// Package sheet loads a composite sprite-sheet image and crops subtexture
// rectangles out of it.
//
// The sheet is decoded once and treated as read-only for the rest of the
// run; every crop is copied into a fresh image, so callers may write crops
// out in any order without holding the source open.
package sheet
