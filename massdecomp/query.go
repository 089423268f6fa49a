package massdecomp

// Exist reports whether any non-negative integer combination of the
// alphabet's weights sums to mass.
func (d *Decomposer) Exist(mass uint64) bool {
	if d.degenerate {
		return d.existDegenerate(mass)
	}
	r := mass % d.w0
	n := d.ert[d.k-1][r]
	return n != d.infty && mass >= n
}

func (d *Decomposer) existDegenerate(mass uint64) bool {
	if d.k == 0 {
		return mass == 0
	}
	return mass%d.w0 == 0
}

// GetOne returns one decomposition of mass, or nil if none exists.
//
// Reconstruction walks the witness chain starting from the final column's
// residue entry: each step subtracts some number of copies of one weight,
// landing in a strictly smaller mass and a new residue class, until the
// chain bottoms out at mass 0. This takes O(k + L) time, where L is the
// witness chain length (at most k).
func (d *Decomposer) GetOne(mass uint64) Decomposition {
	if !d.Exist(mass) {
		return nil
	}

	dec := make(Decomposition, d.k)
	if d.degenerate {
		if d.k == 1 {
			dec[0] = uint32(mass / d.w0)
		}
		return dec
	}

	r := mass % d.w0
	m := d.ert[d.k-1][r]
	dec[0] = uint32((mass - m) / d.w0)

	for m > 0 {
		w := d.witness[r]
		dec[w.index] += w.count
		if m < uint64(w.count)*d.weights.Weight(w.index) {
			// Defensive guard against witness-vector inconsistencies;
			// unreachable for a correctly built witness vector.
			break
		}
		m -= uint64(w.count) * d.weights.Weight(w.index)
		r = m % d.w0
	}
	return dec
}
