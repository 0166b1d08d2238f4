// Package driver runs a sim.Step against a wall clock.
//
// Each frame the host polls its input, hands the elapsed time to
// [Driver.Frame], and receives exactly one render through its [Sink]. Frame
// runs at most [MaxAdvancesPerFrame] fixed-size advances; any time beyond
// that stays in the accumulator and is worked off in later frames. Switching
// schemes discards the Step and the accumulator.
package driver
