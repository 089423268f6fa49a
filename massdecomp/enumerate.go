package massdecomp

// GetAll returns every distinct non-negative integer decomposition of mass.
// The order of the returned decompositions is unspecified; callers that
// care about order should sort the result themselves.
func (d *Decomposer) GetAll(mass uint64) []Decomposition {
	if d.degenerate {
		return d.getAllDegenerate(mass)
	}

	var out []Decomposition
	buf := make(Decomposition, d.k)
	d.rec(mass, d.k-1, buf, &out)
	return out
}

func (d *Decomposer) getAllDegenerate(mass uint64) []Decomposition {
	if d.k == 0 {
		if mass == 0 {
			return []Decomposition{{}}
		}
		return nil
	}
	if mass%d.w0 == 0 {
		return []Decomposition{{uint32(mass / d.w0)}}
	}
	return nil
}

// Count returns len(GetAll(mass)) without necessarily materializing every
// decomposition.
func (d *Decomposer) Count(mass uint64) uint64 {
	if d.degenerate {
		return uint64(len(d.getAllDegenerate(mass)))
	}
	return d.countRec(mass, d.k-1)
}

// rec walks alphabet index j from k-1 down to 0, appending a copy of buf to
// out for every valid assignment of buf[0..j]. Within a fixed residue class
// r = ERT[j-1][(mass - i*wj) mod w0], all decomposable remaining masses are
// congruent mod lcm[j]; stepping the remaining mass down by lcm[j] while
// bumping buf[j] by massInLCM[j] walks every valid buf[j] for that i exactly
// once. The m >= r guard prunes to subproblems guaranteed to have a witness.
func (d *Decomposer) rec(mass uint64, j int, buf Decomposition, out *[]Decomposition) {
	if j == 0 {
		if mass%d.w0 == 0 {
			buf[0] = uint32(mass / d.w0)
			cp := make(Decomposition, len(buf))
			copy(cp, buf)
			*out = append(*out, cp)
		}
		return
	}

	lcm := d.lcm[j]
	s := d.massInLCM[j]
	wj := d.weights.Weight(j)
	modDecrement := wj % d.w0
	modAlpha0 := mass % d.w0

	for i := uint64(0); i < s; i++ {
		buf[j] = uint32(i)
		if mass < i*wj {
			break
		}

		r := d.ert[j-1][modAlpha0]
		if r != d.infty {
			m := mass - i*wj
			for m >= r {
				d.rec(m, j-1, buf, out)
				buf[j] += uint32(s)
				if m < lcm {
					break
				}
				m -= lcm
			}
		}

		if modAlpha0 < modDecrement {
			modAlpha0 += d.w0 - modDecrement
		} else {
			modAlpha0 -= modDecrement
		}
	}
}

// countRec mirrors rec but only accumulates a count, avoiding the
// allocation of every decomposition.
func (d *Decomposer) countRec(mass uint64, j int) uint64 {
	if j == 0 {
		if mass%d.w0 == 0 {
			return 1
		}
		return 0
	}

	lcm := d.lcm[j]
	s := d.massInLCM[j]
	wj := d.weights.Weight(j)
	modDecrement := wj % d.w0
	modAlpha0 := mass % d.w0

	var total uint64
	for i := uint64(0); i < s; i++ {
		if mass < i*wj {
			break
		}

		r := d.ert[j-1][modAlpha0]
		if r != d.infty {
			m := mass - i*wj
			for m >= r {
				total += d.countRec(m, j-1)
				if m < lcm {
					break
				}
				m -= lcm
			}
		}

		if modAlpha0 < modDecrement {
			modAlpha0 += d.w0 - modDecrement
		} else {
			modAlpha0 -= modDecrement
		}
	}
	return total
}
