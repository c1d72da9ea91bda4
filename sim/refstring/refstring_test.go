package refstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"spaces", "7 0 1 2 0 3", []int{7, 0, 1, 2, 0, 3}},
		{"repeated whitespace", "  7\t0\n\n1  ", []int{7, 0, 1}},
		{"commas", "1,2, 3 ,4", []int{1, 2, 3, 4}},
		{"negative and large", "-1 +5 123456789", []int{-1, 5, 123456789}},
		{"blank", "   ", []int{}},
		{"empty", "", []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{"1 two 3", "1.5", "3abc", "0x10", "- 1"} {
		refs, err := Parse(input)
		assert.Nil(t, refs, "input %q", input)
		assert.ErrorIs(t, err, ErrMalformedReference, "input %q", input)
	}
}

func TestParse_ErrorNamesToken(t *testing.T) {
	_, err := Parse("1 2 x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `token 3 "x"`)
}

func TestParseCapacity(t *testing.T) {
	c, err := ParseCapacity(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, c)

	for _, input := range []string{"0", "-2", "three", ""} {
		_, err := ParseCapacity(input)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "input %q", input)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	refs := []int{7, 0, -1, 42}
	text := Format(refs)
	assert.Equal(t, "7 0 -1 42", text)

	back, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, refs, back)
}
