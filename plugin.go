package serializer

// ErrorPlugin is the contract implemented by every unit that claims ownership
// of one error family and serializes it into the canonical Response shape.
//
// New error families are supported by implementing this interface and
// registering the plugin; the orchestrator itself never changes.
type ErrorPlugin interface {
	// Name returns the stable string identifier recorded in response
	// metadata. Callers branch on it to ask "was this handled by the
	// validation plugin?".
	Name() string

	// Priority returns the dispatch precedence assigned at construction.
	// It never changes for the lifetime of the plugin.
	Priority() Priority

	// Match reports whether this plugin can serialize the input. It must be
	// a pure predicate: no side effects, no panics, and false for any input
	// the plugin cannot safely serialize.
	Match(input any) bool

	// Serialize converts the input into a fully populated response. It is
	// invoked only after Match returned true for the same input and must
	// not panic for any input that passed Match.
	Serialize(input any) *Response
}

// Subscriber observes every response produced by a Serializer, for
// side-effect purposes such as logging or metrics. Subscribers receive the
// identical response instance returned to the caller and must not mutate it.
type Subscriber func(*Response)
