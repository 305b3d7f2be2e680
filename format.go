package textarrays

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Separator is a set of separators written between two cells.
type Separator uint8

const (
	SepComma Separator = 1 << iota
	SepSpace
)

func (s Separator) String() string {
	sep := ""
	if s&SepComma != 0 {
		sep += ","
	}
	if s&SepSpace != 0 {
		sep += " "
	}
	return sep
}

const (
	defaultHoleMarker = "-"
	labelWidth        = 7
)

// Formatter renders columns as fixed-width rows. All cells of a row share one
// width; FormatRows uses the same width for all its rows so they line up.
type Formatter struct {
	Separator Separator
	// Hex writes index and length values in lowercase hexadecimal.
	Hex bool
	// HoleMarker is written for undefined Psi and Phi slots. A marker that
	// could be mistaken for a value or a separator is replaced by "-".
	HoleMarker string
	// VisibleWhitespace replaces newlines by '↵' and other whitespace
	// by '⎵' in symbol rows.
	VisibleWhitespace bool
}

func (f Formatter) radix() int {
	if f.Hex {
		return 16
	}
	return 10
}

func (f Formatter) holeMarker() string {
	m := f.HoleMarker
	if m == "" || strings.ContainsAny(m, ", |") {
		return defaultHoleMarker
	}
	if _, err := strconv.ParseInt(strings.TrimSpace(m), 16, 64); err == nil {
		return defaultHoleMarker
	}
	return m
}

// CellWidth is the width needed by the index values and the hole marker of a
// text of n symbols numbered from base.
func (f Formatter) CellWidth(n, base int) int {
	w := len(strconv.FormatInt(int64(max(n+base-1, 0)), f.radix()))
	return max(w, displayWidth(f.holeMarker()))
}

// ColumnWidth is the cell width FormatColumn uses for c. It also covers the
// widest symbol of the text, so it is the same for every column of a set
// except the S/L row, which needs at least 2.
func (f Formatter) ColumnWidth(c Column) int {
	w := max(f.CellWidth(c.Len(), c.Base), c.SymbolWidth)
	if c.Kind == KindTypes {
		w = max(w, 2)
	}
	return w
}

// RowWidth is the cell width shared by all rows FormatRows writes for names.
func (f Formatter) RowWidth(set *IndexSet, names []Structure) int {
	w := 0
	for _, name := range names {
		w = max(w, f.ColumnWidth(set.Column(name)))
	}
	return w
}

// FormatColumn renders a single column without its label.
func (f Formatter) FormatColumn(c Column) string {
	return f.formatColumn(c, f.ColumnWidth(c))
}

func (f Formatter) formatColumn(c Column, w int) string {
	n := c.Len()
	if n == 0 {
		return ""
	}
	sep := f.Separator.String()

	var sb strings.Builder
	switch c.Kind {
	case KindIndices, KindLengths:
		for i, e := range c.Entries {
			if i > 0 {
				sb.WriteString(sep)
			}
			cell := f.holeMarker()
			if e.Defined {
				cell = strconv.FormatInt(int64(e.Value), f.radix())
			}
			sb.WriteString(padLeft(cell, w))
		}
	case KindSymbols:
		for i, sym := range c.Symbols {
			if i > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(padLeft(f.symbol(sym), w))
		}
	case KindFactorization:
		for i, s := range c.Symbols {
			sb.WriteString(padLeft(f.symbol(s), w))
			marked := i < len(c.Marks) && c.Marks[i]
			switch {
			case i == n-1:
				if marked {
					sb.WriteByte('|')
				}
			case marked && sep != "":
				sb.WriteByte('|')
				sb.WriteString(sep[1:])
			case marked:
				sb.WriteByte('|')
			default:
				sb.WriteString(sep)
			}
		}
	case KindTypes:
		for i, t := range c.Types {
			if i > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(padLeft(t.String(), w))
		}
	}
	return sb.String()
}

// FormatRows renders the requested structures of set, one labeled row per
// line. All cells use RowWidth, so with a non-empty separator every line has
// the same display width. Without a separator the factor marks of LYNDON and
// LZ77 rows take extra columns.
func (f Formatter) FormatRows(set *IndexSet, names []Structure) string {
	w := f.RowWidth(set, names)
	rows := make([]string, 0, len(names))
	for _, name := range names {
		label := padRight(name.String()+":", labelWidth)
		rows = append(rows, label+f.formatColumn(set.Column(name), w))
	}
	return strings.Join(rows, "\n")
}

// ParseIndices reads back an index or length row of n cells, each w columns
// wide. Use ColumnWidth for a row from FormatColumn and RowWidth for a row
// from FormatRows, without its label. Values are returned exactly as
// rendered, base included.
func (f Formatter) ParseIndices(row string, n, w int) ([]Entry, error) {
	sep := f.Separator.String()
	marker := f.holeMarker()

	rest := row
	entries := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			if !strings.HasPrefix(rest, sep) {
				return nil, fmt.Errorf("%w: missing separator before cell %d", ErrMalformedRow, i)
			}
			rest = rest[len(sep):]
		}
		cell, tail, ok := takeCell(rest, w)
		if !ok {
			return nil, fmt.Errorf("%w: cell %d is truncated", ErrMalformedRow, i)
		}
		rest = tail

		cell = strings.TrimLeft(cell, " ")
		if cell == marker {
			entries = append(entries, Entry{})
			continue
		}
		v, err := strconv.ParseInt(cell, f.radix(), 0)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %d: %q", ErrMalformedRow, i, cell)
		}
		entries = append(entries, defined(int(v)))
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedRow, len(rest))
	}
	return entries, nil
}

// takeCell splits off the leading cell of display width w.
func takeCell(s string, w int) (cell, rest string, ok bool) {
	used := 0
	for i, r := range s {
		if used == w {
			return s[:i], s[i:], true
		}
		used += runeWidth(r)
		if used > w {
			return "", "", false
		}
	}
	return s, "", used == w
}

func (f Formatter) symbol(c Symbol) string {
	r := c.rune()
	if f.VisibleWhitespace && c != Sentinel {
		switch {
		case r == '\n':
			r = '↵'
		case unicode.IsSpace(r):
			r = '⎵'
		}
	}
	return string(r)
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runeWidth(r)
	}
	return w
}

func padLeft(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}

func padRight(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// ParseOptions reads a dash separated option list as used by the web
// front end: baseone, basezero, dollar, comma, space, whitespace, hex and
// kasai. Unknown options are ignored and later options override earlier
// ones.
func ParseOptions(list string) (Config, Formatter) {
	var cfg Config
	f := Formatter{HoleMarker: defaultHoleMarker}
	for _, opt := range strings.Split(list, "-") {
		switch strings.ToLower(strings.TrimSpace(opt)) {
		case "baseone":
			cfg.Base = 1
		case "basezero":
			cfg.Base = 0
		case "dollar":
			cfg.AppendSentinel = true
		case "kasai":
			cfg.Kasai = true
		case "comma":
			f.Separator |= SepComma
		case "space":
			f.Separator |= SepSpace
		case "whitespace":
			f.VisibleWhitespace = true
		case "hex":
			f.Hex = true
		}
	}
	return cfg, f
}
