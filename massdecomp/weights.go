package massdecomp

import "fmt"

// WeightsProvider is the external collaborator a Decomposer is built from.
// Implementations own their own storage; the core reads weights through
// this interface both during construction and in queries (GetOne, GetAll,
// Count), so the provider must stay unchanged for the Decomposer's
// lifetime. github.com/ndaniels/massdecomp/alphabet
// provides one implementation; Weights below is the minimal one.
type WeightsProvider interface {
	// Size returns the number of weights in the alphabet.
	Size() int

	// Weight returns the i'th weight, 0 <= i < Size(). Weights must be
	// sorted strictly ascending and positive; the Decomposer does not
	// re-sort or validate beyond the checks in New.
	Weight(i int) uint64
}

// Weights is the lightest possible WeightsProvider: a plain sorted slice of
// positive integer weights, with no names attached. Use the alphabet
// package when symbols or file loading are needed.
type Weights []uint64

// Size implements WeightsProvider.
func (w Weights) Size() int { return len(w) }

// Weight implements WeightsProvider.
func (w Weights) Weight(i int) uint64 { return w[i] }

// validate checks the WeightsProvider precondition: k >= 0, every weight
// positive, strictly ascending. k < 2 is allowed (degenerate decomposer,
// see New) but k == 1 with a non-positive weight, or any disorder, is
// rejected.
func validate(w WeightsProvider) error {
	k := w.Size()
	if k < 0 {
		return fmt.Errorf("massdecomp: negative alphabet size %d", k)
	}
	var prev uint64
	for i := 0; i < k; i++ {
		wi := w.Weight(i)
		if wi == 0 {
			return fmt.Errorf("massdecomp: weight at index %d is zero", i)
		}
		if i > 0 && wi <= prev {
			return fmt.Errorf(
				"massdecomp: weights must be strictly ascending, "+
					"weight(%d)=%d <= weight(%d)=%d", i, wi, i-1, prev)
		}
		prev = wi
	}
	return nil
}
