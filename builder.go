package suffixrank

import (
	"golang.org/x/exp/constraints"
)

const (
	// Sentinel is appended to every text before sorting. It must be smaller
	// than any real symbol, so symbols start at Sentinel+1.
	Sentinel = 0

	DefaultAlphabetMax = 127
	maxAlphabetMax     = 255
)

type SuffixArrayBuilder struct {
	alphabetMax int
	compact     bool
}

func NewBuilder() *SuffixArrayBuilder {
	return &SuffixArrayBuilder{
		alphabetMax: DefaultAlphabetMax,
	}
}

// Sets the largest symbol code accepted by Build. Values outside [1, 255] are clamped.
// The base counting sort uses alphabetMax+1 buckets.
func (b *SuffixArrayBuilder) WithAlphabetMax(k int) *SuffixArrayBuilder {
	b.alphabetMax = min(max(k, Sentinel+1), maxAlphabetMax)
	return b
}

// Remaps the symbols that occur in the text onto a dense range before sorting.
// Costs one extra pass over the text, saves buckets when the text uses few distinct symbols.
// The resulting arrays are identical to the ones built without compaction.
func (b *SuffixArrayBuilder) CompactAlphabet() *SuffixArrayBuilder {
	b.compact = true
	return b
}

func (b *SuffixArrayBuilder) AlphabetMax() int {
	return b.alphabetMax
}

// Result holds the suffix array of a text and its inverse.
// SuffixArray[InverseSuffixArray[i]] == i for every position i.
type Result struct {
	SuffixArray        []int
	InverseSuffixArray []int
}

func (b *SuffixArrayBuilder) Build(text []byte) (*Result, error) {
	return Build(b, text)
}

// Build sorts the suffixes of text, a sequence of symbols in [Sentinel+1, b.AlphabetMax()].
// The returned error wraps ErrInvalidInput when text is empty or holds an out of range symbol.
func Build[S constraints.Integer](b *SuffixArrayBuilder, text []S) (*Result, error) {
	if len(text) == 0 {
		return nil, &InvalidInputError{Pos: -1, Max: b.alphabetMax}
	}

	// Room for the sentinel at the end.
	symbols := make([]int, len(text)+1)
	for i, s := range text {
		if s <= Sentinel || uint64(s) > uint64(b.alphabetMax) {
			return nil, &InvalidInputError{Pos: i, Symbol: s, Max: b.alphabetMax}
		}
		symbols[i] = int(s)
	}
	symbols[len(text)] = Sentinel

	buckets := b.alphabetMax + 1
	if b.compact {
		buckets = compactSymbols(symbols, b.alphabetMax)
	}

	sa, isa := sortCyclic(symbols, buckets)
	return &Result{SuffixArray: sa, InverseSuffixArray: isa}, nil
}

// BuildSuffixArray builds with the default configuration.
func BuildSuffixArray(text []byte) ([]int, []int, error) {
	res, err := NewBuilder().Build(text)
	if err != nil {
		return nil, nil, err
	}
	return res.SuffixArray, res.InverseSuffixArray, nil
}

// Maps every symbol that occurs onto [0, d) keeping their order, returns d.
// The sentinel is the smallest symbol, so it keeps code 0.
func compactSymbols(symbols []int, alphabetMax int) int {
	code := make([]int, alphabetMax+1)
	for _, s := range symbols {
		code[s] = 1
	}
	d := 0
	for c := range code {
		if code[c] == 0 {
			continue
		}
		code[c] = d
		d++
	}
	for i, s := range symbols {
		symbols[i] = code[s]
	}
	return d
}
