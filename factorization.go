package textarrays

// SLType classifies a suffix against its right neighbour, as used by
// induced sorting.
type SLType uint8

const (
	TypeS SLType = iota
	TypeL
	// TypeSStar is an S position whose left neighbour is L.
	TypeSStar
)

func (t SLType) String() string {
	switch t {
	case TypeS:
		return "S"
	case TypeL:
		return "L"
	case TypeSStar:
		return "S*"
	default:
		return "?"
	}
}

// IsS reports whether t is S or S*.
func (t SLType) IsS() bool { return t != TypeL }

// Marks the end of every Lyndon factor except the last one. A factor ends
// at i whenever the suffix at i+1 ranks below every suffix of the current
// factor.
func buildLyndon(rank []int) []bool {
	n := len(rank)
	marks := make([]bool, n)
	minRank := rank[0]
	for i := 0; i+1 < n; i++ {
		if rank[i+1] < minRank {
			marks[i] = true
			minRank = rank[i+1]
		}
	}
	return marks
}

// lpf[i] is the length of the longest prefix of the suffix at i that also
// starts at some earlier position.
func buildLPF(n int, lce *lceIndex) []int {
	lpf := make([]int, n)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			lpf[i] = max(lpf[i], lce.query(i, j))
		}
	}
	return lpf
}

// Greedy LZ77 parsing driven by the LPF array. The first factor is always the
// first symbol; every later factor is either a fresh symbol or the longest
// copy from earlier text.
func buildLZ77(lpf []int) []bool {
	n := len(lpf)
	marks := make([]bool, n)
	boundary := 1
	for i := range n {
		if boundary == i {
			marks[i-1] = true
			boundary += max(lpf[i], 1)
		}
	}
	return marks
}

func buildSLTypes(text Symbols) []SLType {
	n := len(text)
	types := make([]SLType, n)
	t := TypeS
	types[n-1] = t
	for i := n - 2; i >= 0; i-- {
		if text[i+1] > text[i] {
			t = TypeS
		} else if text[i+1] < text[i] {
			t = TypeL
			if types[i+1] == TypeS {
				types[i+1] = TypeSStar
			}
		}
		types[i] = t
	}
	return types
}
