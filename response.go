package serializer

import "encoding/json"

// Metadata identifies the handler that produced a response. Priority enables
// downstream sorting and alerting tiers without re-inspecting the input.
type Metadata struct {
	// Plugin is the name of the plugin that produced the response, or
	// NameFallback for responses synthesized by the serializer itself.
	Plugin string `json:"plugin"`

	// Priority is the dispatch priority of that handler; -1 for fallback.
	Priority Priority `json:"priority"`
}

// Response is the canonical output shape produced for every input, matched
// or not. Its field set and optionality are a stable public contract: adding
// fields is backward-compatible, removing or renaming any is a breaking
// change.
type Response struct {
	// Metadata is always present.
	Metadata Metadata `json:"metadata"`

	// Err retains the original input unmodified and by reference, so a
	// caller may later introspect handler-specific fields. It is never
	// copied, cloned, or stringified by this package.
	Err any `json:"-"`

	// Global is the primary human-readable message, when one exists.
	Global string `json:"global,omitempty"`

	// Code is an ordered sequence of identifiers. Insertion order is
	// first-seen order and entries are unique. When present it is
	// non-empty.
	Code []string `json:"code,omitempty"`

	// Status is an integer status code. Zero is a valid, meaningful value
	// (a transport failure with no server response), distinct from absent,
	// hence the pointer.
	Status *int `json:"status,omitempty"`

	// Validation maps a field-path key to a message value: a single
	// string or number, or a list of strings, depending on the producing
	// plugin's configuration.
	Validation map[string]any `json:"validation,omitempty"`
}

// Fields holds the optional payload a plugin contributes to a response.
// Metadata is supplied separately by NewResponse so it is never
// hand-assembled inconsistently across plugins.
type Fields struct {
	Global     string
	Code       []string
	Status     *int
	Validation map[string]any
}

// NewResponse builds a fully populated response from handler identity,
// the original input, and the plugin-supplied fields. Every plugin and the
// fallback path construct responses exclusively through this helper, so no
// partially constructed response is ever observable.
func NewResponse(plugin string, priority Priority, input any, fields Fields) *Response {
	return &Response{
		Metadata: Metadata{
			Plugin:   plugin,
			Priority: priority,
		},
		Err:        input,
		Global:     fields.Global,
		Code:       fields.Code,
		Status:     fields.Status,
		Validation: fields.Validation,
	}
}

// StatusOf returns a pointer to status, for populating Fields.Status.
func StatusOf(status int) *int {
	return &status
}

// ToJSON marshals the response for an API payload. The retained input is
// excluded: it may hold arbitrary non-serializable values and often contains
// internal details unsafe to expose over the wire.
func (r *Response) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
