// Package refstring converts free-form text into engine input: a reference
// sequence of page identifiers and a frame capacity.
package refstring

import (
	"fmt"
	"strconv"
	"strings"
)

type constError string

func (errStr constError) Error() string { return string(errStr) }

const (
	// ErrMalformedReference is returned when a token is not an integer.
	ErrMalformedReference = constError("malformed reference")
	// ErrInvalidCapacity is returned when a capacity is not a positive integer.
	ErrInvalidCapacity = constError("invalid frame capacity")
)

// Parse splits text on whitespace and commas and converts every token to an
// integer page identifier. Blank text yields an empty, non-nil sequence.
func Parse(text string) ([]int, error) {
	tokens := strings.FieldsFunc(text, isSeparator)
	refs := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		page, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedReference, i+1, tok)
		}
		refs = append(refs, page)
	}
	return refs, nil
}

// ParseCapacity converts text to a frame capacity >= 1.
func ParseCapacity(text string) (int, error) {
	c, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidCapacity, text)
	}
	if c < 1 {
		return 0, fmt.Errorf("%w: must be >=1 but %d was requested", ErrInvalidCapacity, c)
	}
	return c, nil
}

// Format renders refs the way Parse accepts them.
func Format(refs []int) string {
	var sb strings.Builder
	for i, r := range refs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(r))
	}
	return sb.String()
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
