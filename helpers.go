package serializer

// IsFallback reports whether the response was synthesized by the serializer
// itself rather than produced by a registered plugin.
//
// Example:
//
//	resp := s.Process(v)
//	if serializer.IsFallback(resp) {
//	    // no plugin recognized v
//	}
func IsFallback(response *Response) bool {
	if response == nil {
		return false
	}
	return response.Metadata.Priority == PriorityFallback
}

// HandledBy reports whether the response was produced by the named plugin.
// Returns false for a nil response.
//
// Example:
//
//	if serializer.HandledBy(resp, serializer.NameValidation) {
//	    for field, message := range resp.Validation {
//	        // surface field-level problems
//	    }
//	}
func HandledBy(response *Response, name string) bool {
	if response == nil {
		return false
	}
	return response.Metadata.Plugin == name
}
