package textarrays

// first[i] is the first symbol of the i-th sorted rotation.
func buildFirstRow(text Symbols, suffixArray []int) Symbols {
	first := make(Symbols, len(suffixArray))
	for i, p := range suffixArray {
		first[i] = text[p]
	}
	return first
}

// bwt[i] is the last symbol of the i-th sorted rotation.
func buildBWT(text Symbols, suffixArray []int) Symbols {
	n := len(text)
	bwt := make(Symbols, n)
	for i, p := range suffixArray {
		bwt[i] = text[(p-1+n)%n]
	}
	return bwt
}

func buildLF(suffixArray, rank []int) []int {
	n := len(suffixArray)
	lf := make([]int, n)
	for i, p := range suffixArray {
		lf[i] = rank[(p-1+n)%n]
	}
	return lf
}

// InvertBWT rebuilds a text of len(bwt) symbols by following lf from start and
// emitting the BWT symbol at every visited rank. The symbols come out back to
// front, the result is returned in text order.
func InvertBWT(bwt Symbols, lf []int, start int) Symbols {
	n := len(bwt)
	if n == 0 || len(lf) != n || start < 0 || start >= n {
		return nil
	}
	text := make(Symbols, n)
	r := start
	for k := n - 1; k >= 0; k-- {
		text[k] = bwt[r]
		r = lf[r]
	}
	return text
}

// LFFromBWT computes the LF mapping using nothing but the BWT: the k-th
// occurrence of a symbol in the BWT maps to the k-th row of the first column
// starting with that symbol. For a sentinel-terminated text this equals the LF
// array built from the suffix array.
func LFFromBWT(bwt Symbols) []int {
	count := make(map[Symbol]int)
	for _, c := range bwt {
		count[c]++
	}
	// first row of every symbol in the sorted first column
	smaller := make(map[Symbol]int, len(count))
	for c := range count {
		for d, k := range count {
			if d < c {
				smaller[c] += k
			}
		}
	}
	seen := make(map[Symbol]int, len(count))
	lf := make([]int, len(bwt))
	for i, c := range bwt {
		lf[i] = smaller[c] + seen[c]
		seen[c]++
	}
	return lf
}

// Reconstruct rebuilds the indexed text from BWT and LF. With the sentinel
// appended the walk starts at the BWT row holding the sentinel; otherwise at
// the rank of the whole text, which is where the last text symbol sits in the
// BWT.
func (s *IndexSet) Reconstruct() Symbols {
	start := s.isa[0]
	if s.sentinel {
		for i, c := range s.bwt {
			if c == Sentinel {
				start = i
				break
			}
		}
	}
	return InvertBWT(s.bwt, s.lf, start)
}
