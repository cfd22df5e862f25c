package html

import "fmt"

// MatchError reports that a required grammar pattern did not match at
// a byte offset into the input.
type MatchError struct {
	Offset int    // byte offset of the failure
	Want   string // expected character class or literal
	Got    string // what was found instead
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("offset %d: want %s, got %s", e.Offset, e.Want, e.Got)
}

// DepthError reports element nesting beyond the configured limit.
type DepthError struct {
	Offset int
	Limit  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("offset %d: element nesting deeper than %d", e.Offset, e.Limit)
}
