package ssa

import "golang.org/x/crypto/blake2b"

// DeriveSeed turns an arbitrary textual seed phrase into a valid LCG
// seed in [1, lcgM-1], so that runs can be keyed by a human-readable
// string (a replicate label, a git commit, a lab notebook entry)
// instead of a raw integer. Grounded on hash.go's blake2b dispatch: the
// same "arbitrary bytes in, fixed-width digest out" job, repurposed
// here to fold a digest down into the generator's state space rather
// than to fingerprint a sequence.
func DeriveSeed(phrase string) int32 {
	digest := blake2b.Sum256([]byte(phrase))
	var v uint32
	for _, b := range digest[:4] {
		v = v<<8 | uint32(b)
	}
	seed := int32(v % (lcgM - 1))
	if seed <= 0 {
		seed++
	}
	return seed
}
