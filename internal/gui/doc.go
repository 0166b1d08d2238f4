// Package gui is the raylib frontend: one window, one driver.Driver, one
// frame per loop iteration. 2D fields are drawn as coloured cells with
// velocity arrows on top; 1D fields as line strips.
package gui
