package peptide

import "github.com/ndaniels/massdecomp/massdecomp"

// CoarseFilter keeps only peptides whose mass is within tolerance of
// targetMass and for which dec.Exist reports the peptide's own mass as
// decomposable over the alphabet dec was built from. The existence check
// is the coarse, cheap filter (an ERT lookup) applied before any alignment
// runs.
func (db *Database) CoarseFilter(dec *massdecomp.Decomposer, targetMass, tolerance uint64) []*Peptide {
	var survivors []*Peptide
	for _, p := range db.Peptides {
		if !withinTolerance(p.Mass, targetMass, tolerance) {
			continue
		}
		if !dec.Exist(p.Mass) {
			continue
		}
		survivors = append(survivors, p)
	}
	return survivors
}

func withinTolerance(mass, target, tolerance uint64) bool {
	var diff uint64
	if mass > target {
		diff = mass - target
	} else {
		diff = target - mass
	}
	return diff <= tolerance
}
