// Package serializer provides a plugin pipeline that normalizes error values
// into a canonical response shape.
package serializer

import "strconv"

// Response codes are string-based for debuggability and natural JSON
// serialization. Plugins contribute codes in first-seen order; duplicates are
// suppressed while preserving the order of first addition.
const (
	// CodeValidation is the baseline code carried by every validation
	// response, present regardless of per-issue overrides.
	CodeValidation = "102"

	// CodeInternal is the fixed code produced for generic runtime errors.
	CodeInternal = "INTERNAL_ERROR"

	// CodeUnhandled is the fixed code of the fallback response synthesized
	// when no registered plugin matches an input.
	CodeUnhandled = "UNHANDLED_EXCEPTION"
)

// HTTPStatusCode synthesizes the transport code for an HTTP client error
// whose response body carried no code of its own. A status of 0 denotes a
// transport failure with no server response and yields "HTTP_0".
func HTTPStatusCode(status int) string {
	return "HTTP_" + strconv.Itoa(status)
}

// codeSet accumulates codes with set semantics while preserving the order of
// first addition.
type codeSet struct {
	seen  map[string]struct{}
	codes []string
}

func newCodeSet(codes ...string) *codeSet {
	s := &codeSet{seen: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		s.add(code)
	}
	return s
}

func (s *codeSet) add(code string) {
	if _, ok := s.seen[code]; ok {
		return
	}
	s.seen[code] = struct{}{}
	s.codes = append(s.codes, code)
}

func (s *codeSet) values() []string {
	return s.codes
}
