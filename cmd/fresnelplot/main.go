// Package main provides the entry point for the fresnelplot CLI.
//
// fresnelplot evaluates the Fresnel equations for light crossing a planar
// boundary between two optical media and renders a two-panel chart of the
// amplitude coefficients and power fractions against the angle of
// incidence.
//
// Usage:
//
//	fresnelplot
//	fresnelplot --n1 1.0 --n2 1.33 -o water.png
//
// See --help for all available options.
package main

// main is the entry point for fresnelplot.
func main() {
	Execute()
}
