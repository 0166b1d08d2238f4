// Package scheme implements the twelve finite-difference discretizations
// stepped through by cfdsteps.
//
// Each scheme is a small struct holding its physical constants and reusable
// scratch buffers; it owns no field data. Advance reads the previous values
// of every grid it is given and writes new interior values in place:
//
//   - [LinearConvection1D], [NonlinearConvection1D]: upwind convection
//   - [Diffusion1D], [Diffusion2D]: FTCS diffusion
//   - [Burgers1D], [Burgers2D]: convection plus diffusion
//   - [LinearConvection2D], [NonlinearConvection2D]: 2D upwind convection
//   - [Relaxation]: Jacobi sweeps for the Laplace and Poisson equations
//   - [Flow]: projection method for cavity and channel flow
//
// Border cells are left to a [grid.Policy]. [Kind] tags the variants so a
// caller can dispatch over the closed set.
package scheme
