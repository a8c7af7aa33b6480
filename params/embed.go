package params

import (
	"embed"
	"fmt"
)

//go:embed defaults/*.par
var embeddedDefaults embed.FS

var defaultFileNames = map[EnergyParamsSet]string{
	Turner1999:     "defaults/rna_turner1999.par",
	Turner2004:     "defaults/rna_turner2004.par",
	Andronescu2007: "defaults/rna_andronescu2007.par",
}

// Default builds a Table from the bundled parameter set set, per
// spec.md §6's param_file configuration field.
func Default(set EnergyParamsSet) (*Table, error) {
	name, ok := defaultFileNames[set]
	if !ok {
		return nil, fmt.Errorf("params: unknown energy parameter set %v", set)
	}
	f, err := embeddedDefaults.Open(name)
	if err != nil {
		return nil, fmt.Errorf("params: open embedded %s: %w", name, err)
	}
	defer f.Close()
	return Parse(f)
}
