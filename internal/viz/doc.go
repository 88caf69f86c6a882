// Package viz draws packed layouts in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 dots per character
//   - [Render]: container outline plus every packed circle
//   - [Preview]: interactive Bubble Tea program that re-packs on input
//
// # Key Bindings
//
//	R     - Re-pack with the next seed
//	+/-   - Add or remove a circle
//	[ ]   - Shrink or grow the circle radius
//	S     - Cycle packing strategies
//	T     - Cycle color themes
//	Q     - Quit
package viz
