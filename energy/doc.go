// Package energy implements the pure nearest-neighbor (INN/MFOLD-3)
// energy kernels: stack, dangle, hairpin, bulge/interior loop, and the
// multi-branch loop composite. Every function here is a side-effect free
// evaluator over a sequence, pair table, and a *params.Table; none of
// them mutate state.
//
// Grounded on _examples/bebop-poly/mfe/mfe.go's
// evaluateStackBulgeInteriorLoop, evaluateHairpinLoop, and
// multiLoopEnergy, generalized from a minimum-free-energy search into
// incremental kernels callable from arbitrary candidate positions.
package energy
