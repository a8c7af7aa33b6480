// Package secondary converts between the engine's in-memory pair table
// (spec.md §3, -1 for unpaired) and Vienna dot-bracket notation, the
// wire format spec.md §6 uses for structure input and trajectory
// output. Grounded on
// _examples/bebop-poly/secondary_structure/dot_bracket.go's bracket-
// matching stack walk.
package secondary
