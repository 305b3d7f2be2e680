package textarrays

import "strings"

// Structure names one of the arrays or strings an IndexSet carries.
type Structure int

const (
	StructIndex Structure = iota
	StructSA
	StructISA
	StructPhi
	StructLCP
	StructPLCP
	StructPsi
	StructF
	StructBWT
	StructLF
	StructLPF
	StructLyndon
	StructLZ77
	StructSL
	numStructures
)

var structureNames = [numStructures]string{
	StructIndex:  "Index",
	StructSA:     "SA",
	StructISA:    "ISA",
	StructPhi:    "PHI",
	StructLCP:    "LCP",
	StructPLCP:   "PLCP",
	StructPsi:    "PSI",
	StructF:      "F",
	StructBWT:    "BWT",
	StructLF:     "LF",
	StructLPF:    "LPF",
	StructLyndon: "LYNDON",
	StructLZ77:   "LZ77",
	StructSL:     "SL",
}

// DefaultStructures is the row selection shown when none is requested.
var DefaultStructures = []Structure{StructIndex, StructSA, StructISA, StructLCP, StructBWT}

func (s Structure) String() string {
	if s < 0 || s >= numStructures {
		return "Structure(?)"
	}
	return structureNames[s]
}

// AllStructures lists every structure in display order.
func AllStructures() []Structure {
	all := make([]Structure, numStructures)
	for i := range all {
		all[i] = Structure(i)
	}
	return all
}

// ParseStructures reads a dash separated list such as "SA-ISA-LCP". Names are
// case insensitive; unknown names and duplicates are dropped.
func ParseStructures(list string) []Structure {
	var res []Structure
	seen := make(map[Structure]bool)
	for _, name := range strings.Split(list, "-") {
		for s, known := range structureNames {
			if strings.EqualFold(name, known) && !seen[Structure(s)] {
				seen[Structure(s)] = true
				res = append(res, Structure(s))
			}
		}
	}
	return res
}

// Kind tells which field of a Column holds its values.
type Kind int

const (
	// KindIndices holds text positions or ranks, shifted by the base.
	KindIndices Kind = iota
	// KindLengths holds prefix lengths, never shifted.
	KindLengths
	KindSymbols
	KindFactorization
	KindTypes
)

// Column is the value of a single structure, ready to be formatted on its own.
type Column struct {
	Name Structure
	Kind Kind
	Base int

	// SymbolWidth is the display width of the widest symbol of the text.
	SymbolWidth int

	Entries []Entry  // KindIndices, KindLengths
	Symbols Symbols  // KindSymbols, KindFactorization
	Marks   []bool   // KindFactorization
	Types   []SLType // KindTypes
}

// Len is the number of cells of the column.
func (c Column) Len() int {
	switch c.Kind {
	case KindIndices, KindLengths:
		return len(c.Entries)
	case KindTypes:
		return len(c.Types)
	default:
		return len(c.Symbols)
	}
}

// Column returns the named structure. Index valued columns are shifted by
// the base of the set.
func (s *IndexSet) Column(name Structure) Column {
	c := Column{Name: name, Base: s.base, SymbolWidth: s.symbolWidth()}
	switch name {
	case StructIndex:
		idx := make([]int, len(s.text))
		for i := range idx {
			idx[i] = i
		}
		c.Kind, c.Entries = KindIndices, shifted(idx, s.base)
	case StructSA:
		c.Kind, c.Entries = KindIndices, shifted(s.sa, s.base)
	case StructISA:
		c.Kind, c.Entries = KindIndices, shifted(s.isa, s.base)
	case StructPhi:
		c.Kind, c.Entries = KindIndices, shiftedEntries(s.phi, s.base)
	case StructPsi:
		c.Kind, c.Entries = KindIndices, shiftedEntries(s.psi, s.base)
	case StructLF:
		c.Kind, c.Entries = KindIndices, shifted(s.lf, s.base)
	case StructLCP:
		c.Kind, c.Entries = KindLengths, shifted(s.lcp, 0)
	case StructPLCP:
		c.Kind, c.Entries = KindLengths, shifted(s.plcp, 0)
	case StructLPF:
		c.Kind, c.Entries = KindLengths, shifted(s.lpf, 0)
	case StructF:
		c.Kind, c.Symbols = KindSymbols, clone(s.first)
	case StructBWT:
		c.Kind, c.Symbols = KindSymbols, clone(s.bwt)
	case StructLyndon:
		c.Kind, c.Symbols, c.Marks = KindFactorization, clone(s.text), clone(s.lyndon)
	case StructLZ77:
		c.Kind, c.Symbols, c.Marks = KindFactorization, clone(s.text), clone(s.lz77)
	case StructSL:
		c.Kind, c.Types = KindTypes, clone(s.sl)
	}
	return c
}

func shifted(values []int, base int) []Entry {
	res := make([]Entry, len(values))
	for i, v := range values {
		res[i] = defined(v + base)
	}
	return res
}

func shiftedEntries(entries []Entry, base int) []Entry {
	res := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Defined {
			res[i] = defined(e.Value + base)
		}
	}
	return res
}

func (s *IndexSet) symbolWidth() int {
	w := 0
	for _, c := range s.text {
		w = max(w, runeWidth(c.rune()))
	}
	return w
}
