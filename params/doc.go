// Package params holds the thermodynamic parameter store: read-only
// nucleotide-indexed energy tables plus a parser for Turner/Andronescu
// style parameter files.
//
// The three files under params/defaults are structurally valid parameter
// files in the exact section and grid layout ParseFile expects, generated
// to exercise the parser end to end. They are not a transcription of
// published Turner or Andronescu measurements — no such data file was
// available to source from. Callers who need scientifically accurate
// energies must supply their own parameter file via ParseFile.
package params
