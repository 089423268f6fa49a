// Package alphabet provides a name-carrying, file-loadable implementation
// of massdecomp.WeightsProvider: an ordered set of named elements (e.g.
// amino acids) each with an integer weight (e.g. a rounded monoisotopic
// mass). It is the "Weights provider" the massdecomp core describes as an
// external collaborator — the core never sees names, only the Size and
// Weight methods through which an Alphabet serves as a WeightsProvider.
package alphabet

import "fmt"

// Element is one named weight in an Alphabet.
type Element struct {
	Name   string
	Symbol byte
	Mass   uint64
}

// Alphabet is an ordered, name-addressable collection of Elements, sorted
// by ascending mass. It satisfies massdecomp.WeightsProvider directly.
type Alphabet struct {
	elements []Element
	bySymbol map[byte]int
}

// New builds an Alphabet from elements, sorting them by mass and
// validating the same preconditions massdecomp.New enforces (positive,
// distinct masses) plus uniqueness of symbols.
func New(elements []Element) (*Alphabet, error) {
	sorted := make([]Element, len(elements))
	copy(sorted, elements)
	sortByMass(sorted)

	bySymbol := make(map[byte]int, len(sorted))
	var prevMass uint64
	for i, e := range sorted {
		if e.Mass == 0 {
			return nil, fmt.Errorf("alphabet: element %q has zero mass", e.Name)
		}
		if i > 0 && e.Mass == prevMass {
			return nil, fmt.Errorf(
				"alphabet: elements %q and %q both have mass %d",
				sorted[i-1].Name, e.Name, e.Mass)
		}
		if _, dup := bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("alphabet: duplicate symbol %q", e.Symbol)
		}
		bySymbol[e.Symbol] = i
		prevMass = e.Mass
	}

	return &Alphabet{elements: sorted, bySymbol: bySymbol}, nil
}

func sortByMass(elements []Element) {
	// Insertion sort: alphabets are small (bio alphabets are k ~ 20), and
	// this keeps the dependency on sort's interface out of a file that's
	// otherwise plain data wrangling.
	for i := 1; i < len(elements); i++ {
		for j := i; j > 0 && elements[j].Mass < elements[j-1].Mass; j-- {
			elements[j], elements[j-1] = elements[j-1], elements[j]
		}
	}
}

// Size implements massdecomp.WeightsProvider.
func (a *Alphabet) Size() int { return len(a.elements) }

// Weight implements massdecomp.WeightsProvider.
func (a *Alphabet) Weight(i int) uint64 { return a.elements[i].Mass }

// Symbol returns the one-letter symbol of the i'th element.
func (a *Alphabet) Symbol(i int) byte { return a.elements[i].Symbol }

// Name returns the name of the i'th element.
func (a *Alphabet) Name(i int) string { return a.elements[i].Name }

// IndexOf returns the index of the element with the given symbol.
func (a *Alphabet) IndexOf(symbol byte) (int, bool) {
	i, ok := a.bySymbol[symbol]
	return i, ok
}

// Mass computes the total mass of a sequence of symbols under this
// alphabet. It returns an error if seq contains an unrecognized symbol.
func (a *Alphabet) Mass(seq []byte) (uint64, error) {
	var total uint64
	for _, s := range seq {
		i, ok := a.bySymbol[s]
		if !ok {
			return 0, fmt.Errorf("alphabet: unrecognized symbol %q", s)
		}
		total += a.elements[i].Mass
	}
	return total, nil
}
