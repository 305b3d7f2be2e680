package textarrays

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidUTF8  = errors.New("textarrays: invalid UTF-8 encoding in input text")
	ErrMalformedRow = errors.New("textarrays: malformed index row")
)

// DefaultPlaceholder is indexed when the input text is empty.
const DefaultPlaceholder = "banana"

// Symbol is a single text position. Real symbols are runes and therefore
// never negative.
type Symbol rune

// Sentinel compares smaller than every real symbol.
const Sentinel Symbol = -1

type Symbols []Symbol

// String renders the symbols, writing the sentinel as '$'.
func (s Symbols) String() string {
	buf := make([]byte, 0, len(s))
	for _, c := range s {
		buf = utf8.AppendRune(buf, c.rune())
	}
	return string(buf)
}

func (c Symbol) rune() rune {
	if c == Sentinel {
		return '$'
	}
	return rune(c)
}

// Config is the configuration accepted by BuildIndexes.
// Any base other than 1 is treated as 0. SkipNormalize indexes the runes of
// the text as given instead of its NFC form.
type Config struct {
	Base           int
	AppendSentinel bool
	SkipNormalize  bool
	Kasai          bool
	Placeholder    string
}

type Builder struct {
	text string
	cfg  Config
}

func NewBuilder(text string) *Builder {
	return &Builder{text: text}
}

// Sets the index numbering offset, only 0 and 1 are meaningful.
func (b *Builder) Base(base int) *Builder {
	b.cfg.Base = base
	return b
}

// Appends the sentinel symbol before indexing, which makes every suffix
// distinct and the suffix order equal to the rotation order.
func (b *Builder) AppendSentinel() *Builder {
	b.cfg.AppendSentinel = true
	return b
}

// Skips the normalization of the text with NFC.
func (b *Builder) SkipNormalization() *Builder {
	b.cfg.SkipNormalize = true
	return b
}

// Builds the LCP array with Kasai's algorithm instead of comparing every
// adjacent pair of suffixes from scratch.
func (b *Builder) UseKasai() *Builder {
	b.cfg.Kasai = true
	return b
}

// Sets the text indexed in place of an empty input.
func (b *Builder) Placeholder(p string) *Builder {
	b.cfg.Placeholder = p
	return b
}

func (b *Builder) Build() (*IndexSet, error) {
	return BuildIndexes(b.text, b.cfg)
}

// IndexSet is one immutable snapshot of every structure derived from a text.
type IndexSet struct {
	text     Symbols
	base     int
	sentinel bool

	sa   []int
	isa  []int
	psi  []Entry
	phi  []Entry
	lcp  []int
	plcp []int
	lce  *lceIndex

	first Symbols
	bwt   Symbols
	lf    []int

	lpf    []int
	lyndon []bool
	lz77   []bool
	sl     []SLType
}

// BuildIndexes computes the whole structure set for text. The only failure is
// text that is not valid UTF-8.
//
// Unless cfg.SkipNormalize is set the text is first normalized to NFC, so the
// indexed symbols, and n, can differ from the runes of text: "e\u0301" is
// indexed as the single symbol 'é'.
func BuildIndexes(text string, cfg Config) (*IndexSet, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	if text == "" {
		text = cfg.Placeholder
		if text == "" {
			text = DefaultPlaceholder
		}
		if !utf8.ValidString(text) {
			return nil, ErrInvalidUTF8
		}
	}

	t := prepareText(text, !cfg.SkipNormalize, cfg.AppendSentinel)
	base := 0
	if cfg.Base == 1 {
		base = 1
	}

	sa := buildSuffixArray(t)
	isa := buildInverse(sa)

	var lcp []int
	if cfg.Kasai {
		lcp = buildLCPKasai(sa, isa, t)
	} else {
		lcp = buildLCPNaive(sa, t)
	}
	lce := newLCEIndex(isa, lcp)
	lpf := buildLPF(len(t), lce)

	return &IndexSet{
		text:     t,
		base:     base,
		sentinel: cfg.AppendSentinel,
		sa:       sa,
		isa:      isa,
		psi:      buildPsi(sa, isa),
		phi:      buildPhi(sa, isa),
		lcp:      lcp,
		plcp:     buildPLCP(isa, lcp),
		lce:      lce,
		first:    buildFirstRow(t, sa),
		bwt:      buildBWT(t, sa),
		lf:       buildLF(sa, isa),
		lpf:      lpf,
		lyndon:   buildLyndon(isa),
		lz77:     buildLZ77(lpf),
		sl:       buildSLTypes(t),
	}, nil
}

func prepareText(text string, normalize, sentinel bool) Symbols {
	if normalize {
		text = norm.NFC.String(text)
	}
	t := make(Symbols, 0, utf8.RuneCountInString(text)+1)
	for _, r := range text {
		t = append(t, Symbol(r))
	}
	if sentinel {
		t = append(t, Sentinel)
	}
	return t
}

func (s *IndexSet) Len() int { return len(s.text) }
func (s *IndexSet) Base() int { return s.base }
func (s *IndexSet) HasSentinel() bool { return s.sentinel }
func (s *IndexSet) Text() Symbols { return clone(s.text) }
func (s *IndexSet) SuffixArray() []int { return clone(s.sa) }
func (s *IndexSet) InverseSuffixArray() []int { return clone(s.isa) }
func (s *IndexSet) LCP() []int { return clone(s.lcp) }
func (s *IndexSet) PLCP() []int { return clone(s.plcp) }
func (s *IndexSet) Psi() []Entry { return clone(s.psi) }
func (s *IndexSet) Phi() []Entry { return clone(s.phi) }
func (s *IndexSet) FirstRow() Symbols { return clone(s.first) }
func (s *IndexSet) BWT() Symbols { return clone(s.bwt) }
func (s *IndexSet) LF() []int { return clone(s.lf) }
func (s *IndexSet) LPF() []int { return clone(s.lpf) }
func (s *IndexSet) Lyndon() []bool { return clone(s.lyndon) }
func (s *IndexSet) LZ77() []bool { return clone(s.lz77) }
func (s *IndexSet) SLTypes() []SLType { return clone(s.sl) }

// LCE returns the length of the longest common prefix of the suffixes
// starting at text positions i and j (0-based).
func (s *IndexSet) LCE(i, j int) int {
	return s.lce.query(i, j)
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}
