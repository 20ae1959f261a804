// Package nonsi defines the non-SI units authorized for air navigation by
// ICAO Annex 5 Table 3-3, plus flight levels, and converts each to its SI
// counterpart in package si.
//
// Every conversion pair carries a single published constant: converting to
// SI multiplies by it, converting from SI divides by it, so both directions
// use the standard's own figure and round-trips stay exact to within one
// float64 division. All conversions are pure functions over float64 and
// follow IEEE-754 for NaN and infinities.
package nonsi
