package suffixrank

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naiveSuffixArray(text []byte) []int {
	sa := make([]int, len(text))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func randText(r *rand.Rand, n, alphabet int) []byte {
	text := make([]byte, n)
	for i := range text {
		text[i] = byte(r.Intn(alphabet) + 'a')
	}
	return text
}

func checkSuffixArray(t *testing.T, text []byte, res *Result) {
	t.Helper()
	n := len(text)
	require.Len(t, res.SuffixArray, n)
	require.Len(t, res.InverseSuffixArray, n)

	seen := make([]bool, n)
	for i, p := range res.SuffixArray {
		require.True(t, p >= 0 && p < n, "position %d out of range", p)
		require.False(t, seen[p], "position %d repeated", p)
		seen[p] = true
		assert.Equal(t, i, res.InverseSuffixArray[p])
		assert.Equal(t, i, res.SuffixArray[res.InverseSuffixArray[i]])
	}
	for i := 0; i+1 < n; i++ {
		a, b := res.SuffixArray[i], res.SuffixArray[i+1]
		assert.Negative(t, bytes.Compare(text[a:], text[b:]), "suffix %d not below suffix %d", a, b)
	}
}

func TestBuildKnown(t *testing.T) {
	tests := map[string]struct {
		text    string
		wantSA  []int
		wantISA []int
	}{
		"single character": {"x", []int{0}, []int{0}},
		"banana":           {"banana", []int{5, 3, 1, 0, 4, 2}, []int{3, 2, 5, 1, 4, 0}},
		"same characters":  {"aaa", []int{2, 1, 0}, []int{2, 1, 0}},
		"sorted":           {"abc", []int{0, 1, 2}, []int{0, 1, 2}},
		"reverse sorted":   {"cba", []int{2, 1, 0}, []int{2, 1, 0}},
		"repeated pattern": {"abab", []int{2, 0, 3, 1}, []int{1, 3, 0, 2}},
		"mississippi": {
			"mississippi",
			[]int{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
			[]int{4, 3, 10, 8, 2, 9, 7, 1, 6, 5, 0},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := NewBuilder().Build([]byte(tc.text))
			require.NoError(t, err)
			assert.Equal(t, tc.wantSA, res.SuffixArray)
			assert.Equal(t, tc.wantISA, res.InverseSuffixArray)
			checkSuffixArray(t, []byte(tc.text), res)
		})
	}
}

func TestBuildRejects(t *testing.T) {
	tests := map[string]struct {
		text []byte
		pos  int
	}{
		"empty":          {[]byte{}, -1},
		"nil":            {nil, -1},
		"sentinel":       {[]byte{'a', Sentinel, 'b'}, 1},
		"above alphabet": {[]byte{'a', 200}, 1},
		"max byte":       {[]byte{255}, 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := NewBuilder().Build(tc.text)
			assert.Nil(t, res)
			require.ErrorIs(t, err, ErrInvalidInput)

			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tc.pos, inputErr.Pos)
			assert.Equal(t, DefaultAlphabetMax, inputErr.Max)
		})
	}
}

func TestBuildAlphabetMax(t *testing.T) {
	text := []byte{200, 3, 255, 3, 200}

	_, err := NewBuilder().Build(text)
	require.ErrorIs(t, err, ErrInvalidInput)

	res, err := NewBuilder().WithAlphabetMax(255).Build(text)
	require.NoError(t, err)
	checkSuffixArray(t, text, res)

	_, err = NewBuilder().WithAlphabetMax(3).Build([]byte{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 255, NewBuilder().WithAlphabetMax(1000).AlphabetMax())
	assert.Equal(t, 1, NewBuilder().WithAlphabetMax(-5).AlphabetMax())
}

func TestBuildGenericSymbols(t *testing.T) {
	b := NewBuilder().WithAlphabetMax(10)
	res, err := Build(b, []int32{3, 1, 4, 1, 5, 9, 2, 6})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 6, 0, 2, 4, 7, 5}, res.SuffixArray)

	_, err = Build(b, []int64{1, -2})
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = Build(b, []uint16{1, 11})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestBuildReportsSymbol(t *testing.T) {
	_, err := Build(NewBuilder(), []uint64{'a', 1 << 63})
	var inputErr *InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, 1, inputErr.Pos)
	assert.Equal(t, uint64(1<<63), inputErr.Symbol)
	assert.Contains(t, err.Error(), "symbol 9223372036854775808 at position 1")

	_, err = Build(NewBuilder(), []int8{'a', -128})
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, int8(-128), inputErr.Symbol)
	assert.Contains(t, err.Error(), "symbol -128 at position 1")

	_, err = NewBuilder().Build([]byte("ab\x00"))
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, byte(0), inputErr.Symbol)
}

func TestBuildCompactMatchesDefault(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for run := 0; run < 50; run++ {
		text := randText(r, r.Intn(300)+1, r.Intn(4)+1)
		plain, err := NewBuilder().Build(text)
		require.NoError(t, err)
		compact, err := NewBuilder().CompactAlphabet().Build(text)
		require.NoError(t, err)
		assert.Equal(t, plain, compact)
	}
}

func TestBuildRandomAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for run := 0; run < 200; run++ {
		text := randText(r, r.Intn(200)+1, []int{1, 2, 3, 26}[run%4])
		res, err := NewBuilder().Build(text)
		require.NoError(t, err)
		require.Equal(t, naiveSuffixArray(text), res.SuffixArray, "text %q", text)
		checkSuffixArray(t, text, res)
	}
}

func TestBuildDeterministic(t *testing.T) {
	text := []byte("abracadabra")
	first, err := NewBuilder().Build(text)
	require.NoError(t, err)
	second, err := NewBuilder().Build(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildSuffixArray(t *testing.T) {
	sa, isa, err := BuildSuffixArray([]byte("banana"))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 1, 0, 4, 2}, sa)
	assert.Equal(t, []int{3, 2, 5, 1, 4, 0}, isa)

	_, _, err = BuildSuffixArray(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func FuzzBuild(f *testing.F) {
	f.Add([]byte("banana"))
	f.Add([]byte("aaaaaaaa"))
	f.Add([]byte("abracadabra"))

	f.Fuzz(func(t *testing.T, text []byte) {
		res, err := NewBuilder().WithAlphabetMax(255).Build(text)
		if len(text) == 0 || bytes.IndexByte(text, Sentinel) >= 0 {
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		checkSuffixArray(t, text, res)
	})
}
