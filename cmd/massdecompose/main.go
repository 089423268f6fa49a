// Command massdecompose exposes massdecomp, alphabet and peptide as a
// single CLI: exist/getone/getall/count answer decomposition questions
// about a mass, identify runs the coarse/fine peptide identification
// workflow against a FASTA database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/ndaniels/massdecomp/alphabet"
	"github.com/ndaniels/massdecomp/massdecomp"
	"github.com/ndaniels/massdecomp/peptide"
)

var (
	flagAlphabet = ""
	flagWorkers  = 4
	flagQuiet    = false
)

func init() {
	log.SetFlags(0)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	sub := os.Args[1]
	args := os.Args[2:]

	switch sub {
	case "exist":
		runExist(args)
	case "getone":
		runGetOne(args)
	case "getall":
		runGetAll(args)
	case "count":
		runCount(args)
	case "identify":
		runIdentify(args)
	default:
		fatalf("unknown subcommand %q\n", sub)
	}
}

// loadAlphabet opens fs's -alphabet flag, falling back to the built-in
// standard amino acid residues when it isn't set.
func loadAlphabet(fs *flag.FlagSet) *alphabet.Alphabet {
	if flagAlphabet == "" {
		return alphabet.StandardAminoAcids()
	}
	f, err := os.Open(flagAlphabet)
	if err != nil {
		fatalf("%s\n", err)
	}
	defer f.Close()

	alpha, err := alphabet.Load(f)
	if err != nil {
		fatalf("loading alphabet %q: %s\n", flagAlphabet, err)
	}
	return alpha
}

func parseMasses(args []string) []uint64 {
	if len(args) == 0 {
		fatalf("at least one mass must be given\n")
	}
	masses := make([]uint64, len(args))
	for i, a := range args {
		m, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			fatalf("%q is not a valid mass: %s\n", a, err)
		}
		masses[i] = m
	}
	return masses
}

func formatDecomposition(alpha *alphabet.Alphabet, d massdecomp.Decomposition) string {
	if d == nil {
		return "<none>"
	}
	var parts []string
	for i, count := range d {
		if count == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%d", alpha.Name(i), count))
	}
	return strings.Join(parts, " ")
}

func runExist(args []string) {
	fs := flag.NewFlagSet("exist", flag.ExitOnError)
	fs.StringVar(&flagAlphabet, "alphabet", "", "Alphabet CSV file (defaults to the standard amino acid residues).")
	fs.IntVar(&flagWorkers, "workers", flagWorkers, "Number of worker goroutines for batches of masses.")
	fs.Parse(args)

	alpha := loadAlphabet(fs)
	dec := massdecomp.New(alpha)
	masses := parseMasses(fs.Args())

	bd := massdecomp.NewBatchDecomposer(dec, flagWorkers)
	defer bd.Close()

	for i, ok := range bd.ExistAll(masses) {
		fmt.Printf("%d\t%t\n", masses[i], ok)
	}
}

func runCount(args []string) {
	fs := flag.NewFlagSet("count", flag.ExitOnError)
	fs.StringVar(&flagAlphabet, "alphabet", "", "Alphabet CSV file (defaults to the standard amino acid residues).")
	fs.IntVar(&flagWorkers, "workers", flagWorkers, "Number of worker goroutines for batches of masses.")
	fs.Parse(args)

	alpha := loadAlphabet(fs)
	dec := massdecomp.New(alpha)
	masses := parseMasses(fs.Args())

	bd := massdecomp.NewBatchDecomposer(dec, flagWorkers)
	defer bd.Close()

	for i, n := range bd.CountAll(masses) {
		fmt.Printf("%d\t%d\n", masses[i], n)
	}
}

func runGetOne(args []string) {
	fs := flag.NewFlagSet("getone", flag.ExitOnError)
	fs.StringVar(&flagAlphabet, "alphabet", "", "Alphabet CSV file (defaults to the standard amino acid residues).")
	fs.IntVar(&flagWorkers, "workers", flagWorkers, "Number of worker goroutines for batches of masses.")
	fs.Parse(args)

	alpha := loadAlphabet(fs)
	dec := massdecomp.New(alpha)
	masses := parseMasses(fs.Args())

	bd := massdecomp.NewBatchDecomposer(dec, flagWorkers)
	defer bd.Close()

	for i, d := range bd.GetOneAll(masses) {
		fmt.Printf("%d\t%s\n", masses[i], formatDecomposition(alpha, d))
	}
}

func runGetAll(args []string) {
	fs := flag.NewFlagSet("getall", flag.ExitOnError)
	fs.StringVar(&flagAlphabet, "alphabet", "", "Alphabet CSV file (defaults to the standard amino acid residues).")
	fs.Parse(args)

	alpha := loadAlphabet(fs)
	dec := massdecomp.New(alpha)
	masses := parseMasses(fs.Args())

	for _, m := range masses {
		all := dec.GetAll(m)
		fmt.Printf("%d\t%d decompositions\n", m, len(all))
		for _, d := range all {
			fmt.Printf("\t%s\n", formatDecomposition(alpha, d))
		}
	}
}

func runIdentify(args []string) {
	var (
		flagFasta     string
		flagQuery     string
		flagTolerance uint64
	)

	fs := flag.NewFlagSet("identify", flag.ExitOnError)
	fs.StringVar(&flagAlphabet, "alphabet", "", "Alphabet CSV file (defaults to the standard amino acid residues).")
	fs.StringVar(&flagFasta, "db", "", "FASTA file of candidate peptides.")
	fs.StringVar(&flagQuery, "query", "", "Query residue sequence to identify.")
	fs.Uint64Var(&flagTolerance, "tolerance", 0, "Mass tolerance for the coarse filter.")
	fs.BoolVar(&flagQuiet, "quiet", flagQuiet, "When set, only the best match is printed.")
	fs.Parse(args)

	if flagFasta == "" || flagQuery == "" {
		fatalf("both -db and -query are required\n")
	}

	alpha := loadAlphabet(fs)
	dec := massdecomp.New(alpha)

	db, err := peptide.LoadDatabase(flagFasta, alpha)
	if err != nil {
		fatalf("%s\n", err)
	}

	query := []byte(flagQuery)
	targetMass, err := alpha.Mass(query)
	if err != nil {
		fatalf("query sequence: %s\n", err)
	}

	candidates := db.CoarseFilter(dec, targetMass, flagTolerance)
	if len(candidates) == 0 {
		fmt.Println("no candidates survived the coarse mass filter")
		return
	}

	matches := peptide.Identify(candidates, query)
	if flagQuiet {
		matches = matches[:1]
	}
	for _, m := range matches {
		fmt.Printf("%s\t%d\t%d\n", m.Peptide.ID, m.Score, m.Peptide.Mass)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"\nUsage: %s {exist|getone|getall|count} [flags] mass [mass ...]\n"+
			"       %s identify [flags] -db db.fasta -query SEQUENCE\n",
		path.Base(os.Args[0]), path.Base(os.Args[0]))
	os.Exit(1)
}

func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}
