package alphabet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads an Alphabet from a "name:symbol:mass" file — colon-separated,
// '#'-commented, one element per line — and builds an Alphabet from it.
func Load(r io.Reader) (alph *Alphabet, err error) {
	defer func() {
		if perr := recover(); perr != nil {
			if e, ok := perr.(error); ok {
				err = e
				return
			}
			panic(perr)
		}
	}()

	reader := csv.NewReader(r)
	reader.Comma = ':'
	reader.Comment = '#'
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(lines))
	for _, line := range lines {
		name := strings.TrimSpace(line[0])
		symbol := strings.TrimSpace(line[1])
		if len(symbol) != 1 {
			panic(fmt.Errorf("alphabet: symbol %q must be a single character", symbol))
		}
		mass, err := strconv.ParseUint(strings.TrimSpace(line[2]), 10, 64)
		if err != nil {
			panic(fmt.Errorf("alphabet: invalid mass for %q: %w", name, err))
		}
		elements = append(elements, Element{
			Name:   name,
			Symbol: symbol[0],
			Mass:   mass,
		})
	}

	return New(elements)
}

// Write serializes a in the same "name:symbol:mass" format Load reads,
// in ascending-mass order. It's the inverse of Load; round-tripping
// through Write then Load yields an equal Alphabet.
func Write(w io.Writer, a *Alphabet) error {
	writer := csv.NewWriter(w)
	writer.Comma = ':'
	writer.UseCRLF = false

	for i := 0; i < a.Size(); i++ {
		record := []string{
			a.Name(i),
			string(a.Symbol(i)),
			strconv.FormatUint(a.Weight(i), 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
