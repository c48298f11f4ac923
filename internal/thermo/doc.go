// Package thermo computes the geometry behind the thermodynamics diagrams:
// single-step reaction energy profiles, multi-step Hess's Law energy paths
// and the water heating/cooling curve. Everything here is a pure function
// of its inputs; callers own any mutable state and map the returned
// positions and energies onto their drawing surface.
package thermo
