// Package viz runs a sketch live in the terminal.
//
// The viewer hosts any [sketch.Sketch] on a Braille surface inside a Bubble
// Tea program and shows a side panel with the frame counter, loop progress
// and, for sketches that report energies, an energy chart.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Rerun setup
//	+/-   - Frames per tick
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q     - Quit
package viz
