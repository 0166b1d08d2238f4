// Package viz provides the terminal frontend for cfdsteps.
//
// [Model] hosts a driver.Driver inside a Bubble Tea program. Each tick is one
// frame; the snapshot it produces is drawn as:
//
//   - an asciigraph line plot for 1D schemes, overlaid with the analytic
//     reference for Burgers' equation
//   - a half-block [Heatmap] coloured by a [Palette] for 2D schemes
//   - a braille [Quiver] of the velocity field for coupled schemes
//
// # Key Bindings
//
//	←/h   - Previous scheme (wraps 1 to 12)
//	→/l   - Next scheme (wraps 12 to 1)
//	Space - Pause/Resume
//	Q     - Quit
package viz
