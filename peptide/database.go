// Package peptide demonstrates massdecomp in a realistic identification
// workflow: a FASTA database of candidate peptides is coarsely filtered by
// mass decomposability, then the survivors are fine-scored by alignment
// against a query sequence. This is a coarse-filter/fine-align
// architecture: a cheap filter narrows the search space before any
// expensive alignment runs.
package peptide

import (
	"fmt"
	"io"

	"github.com/kortschak/biogo/io/seqio/fasta"
	"github.com/kortschak/biogo/seq"

	"github.com/ndaniels/massdecomp/alphabet"
)

// Peptide is one FASTA record together with its mass under a given
// Alphabet.
type Peptide struct {
	ID       string
	Residues []byte
	Mass     uint64
}

// Database is an in-memory collection of Peptides read from a FASTA file.
type Database struct {
	Peptides []*Peptide
}

// LoadDatabase reads every record from a FASTA file and computes its mass
// under alpha. Records containing a symbol alpha doesn't recognize are
// skipped, not treated as fatal — a real peptide database routinely
// contains entries with ambiguity codes the alphabet doesn't model.
func LoadDatabase(name string, alpha *alphabet.Alphabet) (*Database, error) {
	reader, err := fasta.NewReaderName(name)
	if err != nil {
		return nil, fmt.Errorf("peptide: opening %q: %w", name, err)
	}

	db := &Database{}
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("peptide: reading %q: %w", name, err)
		}

		mass, err := alpha.Mass(s.Seq)
		if err != nil {
			continue
		}
		db.Peptides = append(db.Peptides, &Peptide{
			ID:       s.ID,
			Residues: s.Seq,
			Mass:     mass,
		})
	}
	return db, nil
}
