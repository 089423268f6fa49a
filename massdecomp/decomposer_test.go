package massdecomp

import (
	"reflect"
	"sort"
	"testing"
)

// bruteForce enumerates every decomposition of mass over weights by
// exhaustive recursion over the multiplicity of each weight, used as an oracle to cross-check the ERT decomposer against a much
// simpler, obviously-correct reference.
func bruteForce(weights []uint64, mass uint64) []Decomposition {
	k := len(weights)
	if k == 0 {
		if mass == 0 {
			return []Decomposition{{}}
		}
		return nil
	}

	var out []Decomposition
	buf := make(Decomposition, k)
	var rec func(remaining uint64, j int)
	rec = func(remaining uint64, j int) {
		if j == k-1 {
			if remaining%weights[j] == 0 {
				buf[j] = uint32(remaining / weights[j])
				cp := make(Decomposition, k)
				copy(cp, buf)
				out = append(out, cp)
			}
			return
		}
		for c := uint64(0); c*weights[j] <= remaining; c++ {
			buf[j] = uint32(c)
			rec(remaining-c*weights[j], j+1)
		}
	}
	rec(mass, 0)
	return out
}

func sortDecompositions(ds []Decomposition) {
	sort.Slice(ds, func(i, j int) bool {
		for x := range ds[i] {
			if ds[i][x] != ds[j][x] {
				return ds[i][x] < ds[j][x]
			}
		}
		return false
	})
}

func assertSetEqual(t *testing.T, got, want []Decomposition) {
	t.Helper()
	sortDecompositions(got)
	sortDecompositions(want)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decompositions differ:\ngot:  %v\nwant: %v", got, want)
	}
}

func TestScenario35And8(t *testing.T) {
	d := New(Weights{3, 5})

	if !d.Exist(8) {
		t.Fatalf("exist(8) over {3,5} should be true")
	}
	if got := d.GetOne(8); !reflect.DeepEqual(got, Decomposition{1, 1}) {
		t.Fatalf("getOne(8) = %v, want [1 1]", got)
	}
	assertSetEqual(t, d.GetAll(8), []Decomposition{{1, 1}})
	if d.Count(8) != 1 {
		t.Fatalf("count(8) = %d, want 1", d.Count(8))
	}
}

func TestScenario35And7(t *testing.T) {
	d := New(Weights{3, 5})

	if d.Exist(7) {
		t.Fatalf("exist(7) over {3,5} should be false")
	}
	if got := d.GetAll(7); len(got) != 0 {
		t.Fatalf("getAll(7) = %v, want empty", got)
	}
	if d.Count(7) != 0 {
		t.Fatalf("count(7) = %d, want 0", d.Count(7))
	}
	if got := d.GetOne(7); got != nil {
		t.Fatalf("getOne(7) = %v, want nil", got)
	}
}

func TestScenario35And15(t *testing.T) {
	d := New(Weights{3, 5})

	if !d.Exist(15) {
		t.Fatalf("exist(15) over {3,5} should be true")
	}
	assertSetEqual(t, d.GetAll(15), []Decomposition{{5, 0}, {0, 3}})
	if d.Count(15) != 2 {
		t.Fatalf("count(15) = %d, want 2", d.Count(15))
	}
}

func TestScenario235And10(t *testing.T) {
	d := New(Weights{2, 3, 5})

	assertSetEqual(t, d.GetAll(10), []Decomposition{
		{5, 0, 0}, {2, 2, 0}, {1, 1, 1}, {0, 0, 2},
	})
	if d.Count(10) != 4 {
		t.Fatalf("count(10) = %d, want 4", d.Count(10))
	}
}

func TestScenarioCoprime7And11(t *testing.T) {
	d := New(Weights{7, 11})

	if d.Exist(1) {
		t.Fatalf("exist(1) over {7,11} should be false")
	}

	all77 := d.GetAll(77)
	hasDecomp := func(ds []Decomposition, want Decomposition) bool {
		for _, got := range ds {
			if reflect.DeepEqual(got, want) {
				return true
			}
		}
		return false
	}
	if !hasDecomp(all77, Decomposition{11, 0}) {
		t.Fatalf("getAll(77) missing [11 0]: %v", all77)
	}
	if !hasDecomp(all77, Decomposition{0, 7}) {
		t.Fatalf("getAll(77) missing [0 7]: %v", all77)
	}

	// Frobenius number of {7, 11} is 59: every mass >= 60 must decompose.
	for m := uint64(60); m < 60+7*11; m++ {
		if !d.Exist(m) {
			t.Fatalf("exist(%d) over {7,11} should be true (Frobenius=59)", m)
		}
	}
}

func standardAminoAcidWeights() Weights {
	return Weights{
		57, 71, 87, 97, 99, 101, 103, 113, 114, 115,
		128, 129, 131, 137, 147, 156, 163, 186,
	}
}

func TestAminoAcidMass500AgainstBruteForce(t *testing.T) {
	w := standardAminoAcidWeights()
	d := New(w)

	want := bruteForce([]uint64(w), 500)
	got := d.GetAll(500)

	if uint64(len(want)) != d.Count(500) {
		t.Fatalf("count(500) = %d, want %d", d.Count(500), len(want))
	}
	assertSetEqual(t, got, want)

	for _, dec := range got {
		var sum uint64
		for i, c := range dec {
			sum += uint64(c) * w[i]
		}
		if sum != 500 {
			t.Fatalf("decomposition %v sums to %d, not 500", dec, sum)
		}
	}
}

func TestPropertyAgainstBruteForce(t *testing.T) {
	alphabets := [][]uint64{
		{2, 3, 5},
		{3, 5},
		{7, 11},
		{4, 6, 9, 20},
		{5, 17, 23, 41},
		{6, 10, 15, 21, 35},
	}

	for _, w := range alphabets {
		d := New(Weights(w))
		for m := uint64(0); m <= 300; m++ {
			want := bruteForce(w, m)
			got := d.GetAll(m)

			if d.Exist(m) != (len(want) > 0) {
				t.Fatalf("alphabet %v, mass %d: exist=%v, want %v",
					w, m, d.Exist(m), len(want) > 0)
			}
			if d.Count(m) != uint64(len(want)) {
				t.Fatalf("alphabet %v, mass %d: count=%d, want %d",
					w, m, d.Count(m), len(want))
			}
			assertSetEqual(t, got, want)

			one := d.GetOne(m)
			if len(want) == 0 {
				if one != nil {
					t.Fatalf("alphabet %v, mass %d: getOne=%v, want nil",
						w, m, one)
				}
				continue
			}
			if one == nil {
				t.Fatalf("alphabet %v, mass %d: getOne=nil, want a member of %v",
					w, m, want)
			}
			var sum uint64
			for i, c := range one {
				sum += uint64(c) * w[i]
			}
			if sum != m {
				t.Fatalf("alphabet %v, mass %d: getOne=%v sums to %d",
					w, m, one, sum)
			}
		}
	}
}

func TestERTMonotonicityAndMinimality(t *testing.T) {
	w := Weights{4, 6, 9, 20}
	d := New(w)

	for r := uint64(0); r < d.w0; r++ {
		for i := 1; i < d.k; i++ {
			if d.ert[i][r] > d.ert[i-1][r] {
				t.Fatalf("ERT not monotone at column %d, residue %d: %d > %d",
					i, r, d.ert[i][r], d.ert[i-1][r])
			}
		}
	}

	for i := 0; i < d.k; i++ {
		sub := []uint64(w[:i+1])
		for r := uint64(0); r < d.w0; r++ {
			got := d.ert[i][r]
			// Find the minimal decomposable mass in residue class r using
			// only weights[0..i], by brute force over a bounded range.
			var want uint64 = d.infty
			for m := uint64(0); m < 5000; m++ {
				if m%d.w0 != r {
					continue
				}
				if len(bruteForce(sub, m)) > 0 {
					want = m
					break
				}
			}
			if got != want {
				t.Fatalf("ERT[%d][%d] = %d, want %d", i, r, got, want)
			}
		}
	}
}

func TestDegenerateAlphabets(t *testing.T) {
	d0 := New(Weights{})
	if !d0.Exist(0) {
		t.Fatalf("exist(0) over empty alphabet should be true")
	}
	if d0.Exist(5) {
		t.Fatalf("exist(5) over empty alphabet should be false")
	}
	assertSetEqual(t, d0.GetAll(0), []Decomposition{{}})

	d1 := New(Weights{7})
	if !d1.Exist(21) {
		t.Fatalf("exist(21) over {7} should be true")
	}
	if d1.Exist(22) {
		t.Fatalf("exist(22) over {7} should be false")
	}
	if got := d1.GetOne(21); !reflect.DeepEqual(got, Decomposition{3}) {
		t.Fatalf("getOne(21) over {7} = %v, want [3]", got)
	}
}

func TestInvalidAlphabetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("New should panic on a non-ascending alphabet")
		}
	}()
	New(Weights{5, 3})
}

func TestBatchDecomposerMatchesSequential(t *testing.T) {
	w := standardAminoAcidWeights()
	d := New(w)
	bd := NewBatchDecomposer(d, 4)
	defer bd.Close()

	masses := make([]uint64, 0, 50)
	for m := uint64(0); m < 1000; m += 20 {
		masses = append(masses, m)
	}

	gotExist := bd.ExistAll(masses)
	gotCount := bd.CountAll(masses)
	for i, m := range masses {
		if gotExist[i] != d.Exist(m) {
			t.Fatalf("ExistAll[%d] (mass %d) = %v, want %v", i, m, gotExist[i], d.Exist(m))
		}
		if gotCount[i] != d.Count(m) {
			t.Fatalf("CountAll[%d] (mass %d) = %d, want %d", i, m, gotCount[i], d.Count(m))
		}
	}
}
