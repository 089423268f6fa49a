package peptide

import "github.com/BurntSushi/cablastp/blosum"

// resTrans translates an ASCII residue character to its BLOSUM62 matrix
// index.
var resTrans [256]int

func init() {
	for i := 0; i < len(blosum.Alphabet62); i++ {
		resTrans[blosum.Alphabet62[i]] = i
	}
}

// score runs Smith-Waterman local alignment between query and candidate,
// scored with BLOSUM62, and returns the best local alignment score.
//
// The DP scores directly against blosum.Matrix62 rather than going through
// a separate alignment library, clamping negative running scores to zero
// and tracking the best cell seen — the clamp is what turns a global
// (Needleman-Wunsch style) recurrence into the local (Smith-Waterman) one
// Identify needs to rank coarse survivors.
func score(query, candidate []byte) int {
	gap := len(blosum.Matrix62) - 1
	matrix := blosum.Matrix62

	r, c := len(query)+1, len(candidate)+1
	table := make([]int, r*c)

	best := 0
	for i := 1; i < r; i++ {
		i2 := (i - 1) * c
		i3 := i * c
		for j := 1; j < c; j++ {
			qVal, cVal := resTrans[query[i-1]], resTrans[candidate[j-1]]

			sdiag := table[i2+(j-1)] + matrix[qVal][cVal]
			sup := table[i2+j] + matrix[qVal][gap]
			sleft := table[i3+(j-1)] + matrix[gap][cVal]

			s := 0
			if sdiag > s {
				s = sdiag
			}
			if sup > s {
				s = sup
			}
			if sleft > s {
				s = sleft
			}
			table[i3+j] = s
			if s > best {
				best = s
			}
		}
	}
	return best
}
