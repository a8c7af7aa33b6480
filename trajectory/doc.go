// Package trajectory writes the tab-separated time/dot-bracket frames
// of spec.md §6's trajectory output format, with a trailing content
// hash so two runs can be compared for exact reproducibility (spec.md
// §9's reproducibility note) without diffing the whole file by hand.
package trajectory
