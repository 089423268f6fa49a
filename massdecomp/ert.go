package massdecomp

// Decomposition is a length-k vector of multiplicities; Decomposition[i] is
// the number of times weight i is used. Sigma Decomposition[i]*Weight(i)
// equals the decomposed mass.
type Decomposition []uint32

// witness is one entry of the witness vector: from residue r, subtracting
// count copies of the weight at index index yields a strictly smaller
// decomposable mass in a new residue class. index == 0 never occurs as a
// real witness (residue 0 terminates the reconstruction chain), so the zero
// value distinguishes "unset".
type witness struct {
	index int
	count uint32
}

// Decomposer holds the Extended Residue Table built from a WeightsProvider,
// plus the lcm, mass_in_lcm, and witness tables the ERT paper derives
// alongside it. All tables are built once in New and never mutated after;
// queries are read-only and safe for concurrent use given independent
// output buffers (see BatchDecomposer for a ready-made fan-out).
type Decomposer struct {
	weights WeightsProvider
	k       int
	w0      uint64
	infty   uint64

	ert       [][]uint64 // k x w0
	lcm       []uint64   // length k, lcm[0] unused
	massInLCM []uint64   // length k, massInLCM[0] unused
	witness   []witness  // length w0

	// degenerate is set when k < 2, in which case none of the tables
	// above are built and queries fall back to the trivial rule: mass is
	// decomposable iff it's a non-negative multiple of the lone weight
	// (or iff it's zero, when there are no weights at all).
	degenerate bool
}

// New builds a Decomposer over w. w must satisfy the WeightsProvider
// precondition (weights positive and strictly ascending); New panics if it
// doesn't, since this is a construction-time precondition violation, not a
// recoverable runtime condition.
//
// Construction is O(k*w0) time and space, done once; every exported query
// method afterwards is a total, read-only function over the resulting
// tables.
func New(w WeightsProvider) *Decomposer {
	if err := validate(w); err != nil {
		panic(err)
	}

	k := w.Size()
	d := &Decomposer{weights: w, k: k}

	if k < 2 {
		d.degenerate = true
		if k == 1 {
			d.w0 = w.Weight(0)
		}
		return d
	}

	d.w0 = w.Weight(0)
	d.infty = d.w0 * w.Weight(k-1)
	d.build()
	return d
}

// build fills the ERT, lcm, massInLCM and witness tables. It mirrors, field
// for field and branch for branch, the fillExtendedResidueTable routine of
// Böcker & Lipták's reference implementation: a Nijenhuis shortcut for
// weights already decomposable by the smaller alphabet, and two distinct
// inner-loop strategies for the remaining columns depending on whether
// gcd(w0, weight) is 1.
func (d *Decomposer) build() {
	k, w0 := d.k, int(d.w0)

	d.ert = make([][]uint64, k)
	d.lcm = make([]uint64, k)
	d.massInLCM = make([]uint64, k)
	d.witness = make([]witness, w0)

	for i := 0; i < k; i++ {
		col := make([]uint64, w0)
		for r := range col {
			col[r] = d.infty
		}
		col[0] = 0
		d.ert[i] = col
	}

	d.fillColumnOne()
	for i := 2; i < k; i++ {
		d.fillColumn(i)
	}
}

// fillColumnOne walks the residues reachable from weight 1 in a cycle of
// step (w1 mod w0), accumulating mass and recording witnesses as it goes.
func (d *Decomposer) fillColumnOne() {
	w0 := int(d.w0)
	w1 := d.weights.Weight(1)

	pInc := int(w1 % d.w0)
	mass := w1
	counter := uint32(0)

	for p := pInc; p != 0; {
		d.ert[1][p] = mass
		mass += w1
		counter++
		d.witness[p] = witness{index: 1, count: counter}

		p += pInc
		if p >= w0 {
			p -= w0
		}
	}

	g := gcd(d.w0, w1)
	d.lcm[1] = w1 * d.w0 / g
	d.massInLCM[1] = d.w0 / g
}

// fillColumn fills column i (2 <= i < k) given that columns 0..i-1 are
// already final.
func (d *Decomposer) fillColumn(i int) {
	w0 := int(d.w0)
	c := d.weights.Weight(i)

	g := gcd(d.w0, c)
	d.lcm[i] = c * d.w0 / g
	d.massInLCM[i] = d.w0 / g

	prevColumn := d.ert[i-1]

	// Nijenhuis' improvement: c is already decomposable by the smaller
	// alphabet, so this column is identical to the previous one.
	if c >= prevColumn[c%d.w0] {
		d.ert[i] = prevColumn
		return
	}

	curColumn := d.ert[i]

	if g == 1 {
		d.fillColumnCoprime(i, c, curColumn, prevColumn)
	} else {
		d.fillColumnBlock(i, c, int(g), w0, curColumn, prevColumn)
	}
}

// fillColumnCoprime handles gcd(w0, c) == 1: every residue is visited
// exactly once, in a single cycle of step (c mod w0).
func (d *Decomposer) fillColumnCoprime(i int, c uint64, curColumn, prevColumn []uint64) {
	w0 := int(d.w0)
	pInc := int(c % d.w0)

	var n uint64
	p := 0
	counter := uint32(0)

	for m := w0; m > 0; m-- {
		n += c
		p += pInc
		counter++
		if p >= w0 {
			p -= w0
		}

		if n > prevColumn[p] {
			n = prevColumn[p]
			counter = 0
		} else {
			d.witness[p] = witness{index: i, count: counter}
		}
		curColumn[p] = n
	}
}

// fillColumnBlock handles gcd(w0, c) == g > 1: residues partition into g
// classes mod g. The cache-friendly trick (per the reference) is to put the
// iteration over residue classes in the inner loop, walking g consecutive
// entries per outer pass.
func (d *Decomposer) fillColumnBlock(i int, c uint64, g, w0 int, curColumn, prevColumn []uint64) {
	cur := int(c % d.w0)
	prev := 0
	// pInc is the step between successive outer passes' starting residue,
	// normalized into [0, w0) so that the single "if cur >= w0" correction
	// below is always enough to bring cur back into range (cur - g can be
	// negative when cur < g).
	pInc := ((cur-g)%w0 + w0) % w0
	counters := make([]uint32, w0)

	// First block (indices 1..g-1) is unreachable from residue 0 by steps
	// of c; it's identical to the previous column.
	for j := 1; j < g; j++ {
		curColumn[j] = prevColumn[j]
	}

	for m := w0 / g; m > 1; m-- {
		for r := 0; r < g; r++ {
			counters[cur]++
			if curColumn[prev]+c > prevColumn[cur] {
				curColumn[cur] = prevColumn[cur]
				counters[cur] = 0
			} else {
				curColumn[cur] = curColumn[prev] + c
				d.witness[cur] = witness{index: i, count: counters[cur]}
			}
			prev++
			cur++
		}
		prev = cur - g
		cur += pInc
		if cur >= w0 {
			cur -= w0
		}
	}

	// Fix-up: re-sweep full cycles while any cell in the current cycle is
	// still improving. The reference treats this as authoritative; the
	// ERT minimality property is what actually certifies it.
	for cont := true; cont; {
		cont = false
		prev++
		cur++
		counters[cur]++
		for r := 1; r < g; r++ {
			if curColumn[prev]+c < curColumn[cur] {
				curColumn[cur] = curColumn[prev] + c
				cont = true
				d.witness[cur] = witness{index: i, count: counters[cur]}
			} else {
				counters[cur] = 0
			}
			prev++
			cur++
		}
		prev = cur - g
		cur += pInc
		if cur >= w0 {
			cur -= w0
		}
	}
}

// gcd returns the greatest common divisor of a and b (a, b > 0).
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
