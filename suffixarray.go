package textarrays

import "sort"

// Builds the suffix array by sorting all suffixes with a full symbol-by-symbol
// comparison. This is O(n² log n), fine for the sizes this package targets.
func buildSuffixArray(text Symbols) []int {
	suffixArray := make([]int, len(text))
	for i := range suffixArray {
		suffixArray[i] = i
	}
	sort.Slice(suffixArray, func(a, b int) bool {
		return compareSuffixes(text, suffixArray[a], suffixArray[b]) < 0
	})
	return suffixArray
}

// compareSuffixes orders text[i:] and text[j:]. A suffix that is a proper
// prefix of the other one is the smaller.
func compareSuffixes(text Symbols, i, j int) int {
	n := len(text)
	for i < n && j < n {
		if text[i] != text[j] {
			if text[i] < text[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	// whichever ran out first is shorter
	switch {
	case i == n && j == n:
		return 0
	case i == n:
		return -1
	default:
		return 1
	}
}

func buildInverse(suffixArray []int) []int {
	rank := make([]int, len(suffixArray))
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}
	return rank
}
