// Package serializer normalizes heterogeneous error values into a single
// stable response shape.
//
// Applications accumulate many error families: structural validation
// aggregates, HTTP client failures, plain runtime errors, and occasionally
// raw primitives surfaced by panicking code paths. This package routes any
// such value through a priority-ordered plugin pipeline and produces one
// canonical Response, so callers branch on a single contract instead of
// inspecting library internals.
//
// # Features
//
//   - Priority-ordered plugin dispatch with first-match-wins semantics
//   - Standard plugins for validation aggregates, HTTP client errors, and
//     generic runtime errors
//   - Guaranteed fallback response for unrecognized inputs (never an error)
//   - Configurable flattening or nesting of validation field paths
//   - Synchronous subscriber notification for logging and metrics sinks
//   - JSON serialization of responses for API payloads
//   - Zero runtime dependencies (Layer 0 library)
//
// # Design Principles
//
//   - One output contract (Response) regardless of input family
//   - Immutability (plugin name, priority, and configuration are fixed at
//     construction)
//   - Purity (matching and serialization are synchronous and side-effect
//     free; the original input is retained by reference, never copied)
//   - Open extension (new error families implement ErrorPlugin; the
//     orchestrator never changes)
//
// # Quick Start
//
// Construct a serializer once during setup and share it:
//
//	s := serializer.New().
//	    Register(serializer.NewValidationPlugin(serializer.ValidationConfig{})).
//	    Register(serializer.NewHTTPClientPlugin()).
//	    Register(serializer.NewGenericPlugin())
//
//	resp := s.Process(err)
//	if serializer.HandledBy(resp, serializer.NameValidation) {
//	    // field-level problems live in resp.Validation
//	}
//
// # Dispatch
//
// Plugins are probed in strictly descending priority order; the first plugin
// whose Match returns true serializes the input and all remaining plugins are
// skipped. Registration order never affects dispatch: the plugin list is
// re-sorted with a stable sort on every Register call, so equal-priority
// plugins keep their relative registration order.
//
// When no plugin matches, Process synthesizes a fallback response with
// priority -1, plugin name "Serializer", code UNHANDLED_EXCEPTION, and the
// input's string representation as the global message. Unrecognized input is
// not an error condition.
//
// # Validation Paths
//
// The validation plugin turns an aggregate of issues, each carrying an
// ordered field path, into a validation map. In flat mode paths join into a
// single key ("user_0_email"); in nested mode they build an object tree where
// integer segments become string keys, not list indices. Path segments that
// are neither strings nor integers are dropped silently. When a nested path
// collides with a previously written leaf the leaf is overwritten: last
// write wins. See ValidationConfig.
//
// # Subscribers
//
// Every response produced by Process, matched or fallback, is passed to each
// subscriber in registration order before Process returns. Subscribers
// receive the identical response instance the caller gets, exactly once per
// Process call. A typical sink:
//
//	s.Subscribe(func(r *serializer.Response) {
//	    slog.Warn("serialized error",
//	        "plugin", r.Metadata.Plugin,
//	        "priority", r.Metadata.Priority,
//	        "code", r.Code)
//	})
//
// # Failure Semantics
//
// Match implementations must not panic and must return false for any input
// they cannot safely serialize. Serialize is only invoked after a true Match
// for the same input. Panics from a plugin's Serialize or from a subscriber
// callback are intentionally not recovered: they propagate to the caller of
// Process, and a panicking subscriber aborts notification of subsequent
// subscribers for that call. Recovery policy belongs to the caller.
//
// # Concurrency
//
// The pipeline is synchronous and single-threaded by design. Register and
// Subscribe are setup-time operations; calling them concurrently with
// Process on the same Serializer is a data race and must be synchronized
// externally. Distinct Serializer instances are fully independent.
package serializer
