package peptide

import "sort"

// Match pairs a candidate peptide with its alignment score against a query
// sequence.
type Match struct {
	Peptide *Peptide
	Score   int
}

// Identify scores every candidate against query with Smith-Waterman
// (BLOSUM62) and returns the matches sorted by descending score, breaking
// ties by peptide ID for a deterministic order. This is the fine
// verification stage that follows CoarseFilter's cheap mass-based pruning.
func Identify(candidates []*Peptide, query []byte) []Match {
	matches := make([]Match, len(candidates))
	for i, cand := range candidates {
		matches[i] = Match{Peptide: cand, Score: score(query, cand.Residues)}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Peptide.ID < matches[j].Peptide.ID
	})
	return matches
}
