package textarrays

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRowsBanana(t *testing.T) {
	s, err := NewBuilder("banana").AppendSentinel().Build()
	require.NoError(t, err)

	f := Formatter{Separator: SepSpace, HoleMarker: "-"}
	got := f.FormatRows(s, []Structure{StructIndex, StructSA, StructPsi, StructPhi, StructLyndon, StructBWT})
	want := strings.Join([]string{
		"Index: 0 1 2 3 4 5 6",
		"SA:    6 5 3 1 0 4 2",
		"PSI:   - 0 5 6 3 1 2",
		"PHI:   1 3 4 5 0 6 -",
		"LYNDON:b|a n|a n|a|$",
		"BWT:   a n n b $ a a",
	}, "\n")
	require.Equal(t, want, got)

	// the S/L row needs two columns per cell and widens every other row
	got = f.FormatRows(s, []Structure{StructSA, StructLyndon, StructSL, StructBWT})
	want = strings.Join([]string{
		"SA:     6  5  3  1  0  4  2",
		"LYNDON: b| a  n| a  n| a| $",
		"SL:     L S*  L S*  L  L S*",
		"BWT:    a  n  n  b  $  a  a",
	}, "\n")
	require.Equal(t, want, got)
}

func TestFormatRowsWideSymbols(t *testing.T) {
	s, err := NewBuilder("日本日").AppendSentinel().Build()
	require.NoError(t, err)

	for _, f := range []Formatter{{Separator: SepSpace}, {Separator: SepComma | SepSpace, Hex: true}, {Separator: SepComma, HoleMarker: "n/a"}} {
		rows := strings.Split(f.FormatRows(s, AllStructures()), "\n")
		require.Len(t, rows, len(AllStructures()))
		for _, row := range rows {
			require.Equal(t, displayWidth(rows[0]), displayWidth(row), "row %q with separator %q", row, f.Separator.String())
		}
	}

	f := Formatter{Separator: SepSpace}
	names := []Structure{StructSA, StructF, StructBWT}
	require.Equal(t, 2, f.RowWidth(s, names))
	rows := strings.Split(f.FormatRows(s, names), "\n")
	require.Equal(t, []string{
		"SA:     3  2  0  1",
		"F:      $ 日 日 本",
		"BWT:   日 本  $ 日",
	}, rows)

	entries, err := f.ParseIndices(rows[0][labelWidth:], s.Len(), f.RowWidth(s, names))
	require.NoError(t, err)
	require.Equal(t, s.Column(StructSA).Entries, entries)
}

func TestFormatSeparators(t *testing.T) {
	s, err := NewBuilder("banana").AppendSentinel().Base(1).Build()
	require.NoError(t, err)

	tests := []struct {
		name string
		sep  Separator
		col  Structure
		want string
	}{
		{"comma space", SepComma | SepSpace, StructSA, "7, 6, 4, 2, 1, 5, 3"},
		{"comma", SepComma, StructLCP, "0,0,1,3,0,0,2"},
		{"none", 0, StructISA, "5473621"},
		{"factor comma space", SepComma | SepSpace, StructLZ77, "b| a| n| a, n, a| $"},
		{"factor comma", SepComma, StructLZ77, "b|a|n|a,n,a|$"},
		{"factor none", 0, StructLyndon, "b|an|an|a|$"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Formatter{Separator: tc.sep}
			require.Equal(t, tc.want, f.FormatColumn(s.Column(tc.col)))
		})
	}
}

func TestFormatHex(t *testing.T) {
	s, err := NewBuilder(strings.Repeat("a", 16)).AppendSentinel().Build()
	require.NoError(t, err)

	f := Formatter{Hex: true}
	require.Equal(t, 2, f.CellWidth(s.Len(), s.Base()))
	row := f.FormatColumn(s.Column(StructSA))
	require.Equal(t, "10 f e d c b a 9 8 7 6 5 4 3 2 1 0", row)

	entries, err := f.ParseIndices(row, s.Len(), f.ColumnWidth(s.Column(StructSA)))
	require.NoError(t, err)
	require.Equal(t, s.Column(StructSA).Entries, entries)
}

func TestHoleMarker(t *testing.T) {
	tests := []struct {
		marker string
		want   string
	}{
		{"", "-"},
		{"-", "-"},
		{"7", "-"},
		{"ff", "-"},
		{"a b", "-"},
		{"|", "-"},
		{"n/a", "n/a"},
		{"⊥", "⊥"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Formatter{HoleMarker: tc.marker}.holeMarker(), "marker %q", tc.marker)
	}

	s, err := NewBuilder("banana").AppendSentinel().Build()
	require.NoError(t, err)
	f := Formatter{Separator: SepComma, HoleMarker: "n/a"}
	row := f.FormatColumn(s.Column(StructPsi))
	require.Equal(t, "n/a,  0,  5,  6,  3,  1,  2", row)

	entries, err := f.ParseIndices(row, s.Len(), f.ColumnWidth(s.Column(StructPsi)))
	require.NoError(t, err)
	require.Equal(t, s.Psi(), entries)
}

// Rendering with base 1 and subtracting one from every parsed value must give
// the base 0 array; hex rows must parse back to the same integers.
func TestRenderRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	formatters := []Formatter{
		{},
		{Separator: SepComma},
		{Separator: SepSpace, Hex: true},
		{Separator: SepComma | SepSpace, Hex: true, HoleMarker: "⊥"},
	}
	for run := 0; run < 40; run++ {
		text := randomText(r, 1+r.Intn(40), 1+r.Intn(4))
		zero, err := NewBuilder(text).AppendSentinel().Build()
		require.NoError(t, err)
		one, err := NewBuilder(text).AppendSentinel().Base(1).Build()
		require.NoError(t, err)

		for _, f := range formatters {
			for _, name := range []Structure{StructSA, StructISA, StructPsi, StructPhi, StructLF, StructLCP, StructLPF} {
				want := zero.Column(name).Entries

				col := zero.Column(name)
				got, err := f.ParseIndices(f.FormatColumn(col), zero.Len(), f.ColumnWidth(col))
				require.NoError(t, err)
				require.Equal(t, want, got, "%v of %q", name, text)

				col = one.Column(name)
				got, err = f.ParseIndices(f.FormatColumn(col), one.Len(), f.ColumnWidth(col))
				require.NoError(t, err)
				shift := 1
				if col.Kind == KindLengths {
					shift = 0
				}
				for i := range got {
					if got[i].Defined {
						got[i].Value -= shift
					}
				}
				require.Equal(t, want, got, "%v of %q with base 1", name, text)
			}
		}
	}
}

func TestParseIndicesMalformed(t *testing.T) {
	f := Formatter{Separator: SepSpace}
	rows := []string{
		"6 5 3 1 0 4",
		"6 5 3 1 0 4 2 9",
		"6 5 3 1 0 4 x",
		"6,5 3 1 0 4 2",
		"6 5 3 1 0 42",
	}
	for _, row := range rows {
		_, err := f.ParseIndices(row, 7, 1)
		require.ErrorIs(t, err, ErrMalformedRow, "row %q", row)
	}
}

func TestFormatSymbols(t *testing.T) {
	col := Column{Kind: KindSymbols, Symbols: Symbols{'a', ' ', '\n', Sentinel}}
	require.Equal(t, "a \n$", Formatter{}.FormatColumn(col))
	require.Equal(t, "a⎵↵$", Formatter{VisibleWhitespace: true}.FormatColumn(col))

	require.Equal(t, 2, displayWidth("日"))
	require.Equal(t, 3, displayWidth("a日"))
	require.Equal(t, "  a", padLeft("a", 3))
	require.Equal(t, " 日", padLeft("日", 3))
}

func TestParseStructures(t *testing.T) {
	require.Equal(t, []Structure{StructSA, StructISA}, ParseStructures("sa-FOO-ISA-SA"))
	require.Empty(t, ParseStructures(""))
	require.Len(t, ParseStructures("Index-SA-ISA-PHI-LCP-PLCP-PSI-F-BWT-LF-LPF-LYNDON-LZ77-SL"), len(AllStructures()))
	for _, s := range AllStructures() {
		require.Equal(t, []Structure{s}, ParseStructures(s.String()))
	}
}

func TestParseOptions(t *testing.T) {
	cfg, f := ParseOptions("baseone-dollar-basezero-comma-space-junk-hex")
	require.Equal(t, 0, cfg.Base)
	require.True(t, cfg.AppendSentinel)
	require.False(t, cfg.Kasai)
	require.Equal(t, ", ", f.Separator.String())
	require.True(t, f.Hex)
	require.False(t, f.VisibleWhitespace)
	require.Equal(t, "-", f.HoleMarker)

	cfg, f = ParseOptions("whitespace-baseone-kasai")
	require.Equal(t, 1, cfg.Base)
	require.True(t, cfg.Kasai)
	require.True(t, f.VisibleWhitespace)
	require.Equal(t, "", f.Separator.String())
}
