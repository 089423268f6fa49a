package alphabet

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/cablastp/blosum"
)

// standardResidues is the set of rounded monoisotopic amino-acid residue
// masses, indexed by one-letter symbol. G=57 is the smallest and therefore
// dominates the ERT's modular indexing (w0 in the decomposer's sense).
//
// Leucine/Isoleucine and Lysine/Glutamine are isobaric once rounded to
// integer masses (113 and 128 respectively); massdecomp.Weights requires
// strictly distinct weights, so each pair is kept as a single combined
// entry rather than two elements sharing a mass. This is standard practice
// for integer mass decomposition and is why the alphabet has 18 entries,
// not 20.
var standardResidues = []Element{
	{Name: "Glycine", Symbol: 'G', Mass: 57},
	{Name: "Alanine", Symbol: 'A', Mass: 71},
	{Name: "Serine", Symbol: 'S', Mass: 87},
	{Name: "Proline", Symbol: 'P', Mass: 97},
	{Name: "Valine", Symbol: 'V', Mass: 99},
	{Name: "Threonine", Symbol: 'T', Mass: 101},
	{Name: "Cysteine", Symbol: 'C', Mass: 103},
	{Name: "Leucine/Isoleucine", Symbol: 'L', Mass: 113},
	{Name: "Asparagine", Symbol: 'N', Mass: 114},
	{Name: "Aspartate", Symbol: 'D', Mass: 115},
	{Name: "Lysine/Glutamine", Symbol: 'K', Mass: 128},
	{Name: "Glutamate", Symbol: 'E', Mass: 129},
	{Name: "Methionine", Symbol: 'M', Mass: 131},
	{Name: "Histidine", Symbol: 'H', Mass: 137},
	{Name: "Phenylalanine", Symbol: 'F', Mass: 147},
	{Name: "Arginine", Symbol: 'R', Mass: 156},
	{Name: "Tyrosine", Symbol: 'Y', Mass: 163},
	{Name: "Tryptophan", Symbol: 'W', Mass: 186},
}

func init() {
	for _, e := range standardResidues {
		if !strings.ContainsRune(blosum.Alphabet62, rune(e.Symbol)) {
			panic(fmt.Sprintf(
				"alphabet: standard residue symbol %q is not in BLOSUM62's alphabet",
				e.Symbol))
		}
	}
}

// StandardAminoAcids returns the alphabet of rounded monoisotopic
// amino-acid residue masses used throughout spec scenarios and tests. I and
// L, and K and Q, share a mass, so each pair is a single element with
// symbol L or K; the symbols I and Q are not in the alphabet, and IndexOf
// and Mass do not recognize them.
func StandardAminoAcids() *Alphabet {
	a, err := New(standardResidues)
	if err != nil {
		// standardResidues is a fixed, known-good table; a failure here
		// is a bug in this package, not a user input error.
		panic(err)
	}
	return a
}
