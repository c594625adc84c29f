package serializer

// Priority determines dispatch precedence: higher values are probed first.
// The table is fixed so that more specific error families are recognized
// before broader ones — a validation aggregate is also a runtime error, so
// specificity is enforced by explicit ordering rather than type broadness.
type Priority = int

const (
	// PriorityValidation is assigned to the validation-error plugin.
	PriorityValidation Priority = 2

	// PriorityTransport is assigned to the HTTP-client-error plugin.
	PriorityTransport Priority = 1

	// PriorityGeneric is assigned to the generic runtime-error plugin, the
	// broadest catch-all before the serializer's own fallback.
	PriorityGeneric Priority = 0

	// PriorityFallback marks responses synthesized by the serializer itself
	// when no registered plugin matched. It is never assigned to a plugin.
	PriorityFallback Priority = -1
)
