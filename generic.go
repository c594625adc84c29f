package serializer

// NameGeneric is the metadata name recorded by the generic runtime plugin.
const NameGeneric = "GenericErrorPlugin"

// GenericPlugin serializes any native error value. It is the broadest
// catch-all before the serializer's own fallback, so it carries the lowest
// plugin priority.
type GenericPlugin struct{}

// NewGenericPlugin creates a generic runtime-error plugin.
func NewGenericPlugin() *GenericPlugin {
	return &GenericPlugin{}
}

// Name returns NameGeneric.
func (p *GenericPlugin) Name() string {
	return NameGeneric
}

// Priority returns PriorityGeneric.
func (p *GenericPlugin) Priority() Priority {
	return PriorityGeneric
}

// Match reports whether the input is a non-nil error value.
func (p *GenericPlugin) Match(input any) bool {
	err, ok := input.(error)
	return ok && err != nil
}

// Serialize builds the generic response: the error's own message and the
// fixed INTERNAL_ERROR code. No status, no validation.
func (p *GenericPlugin) Serialize(input any) *Response {
	err, _ := input.(error)

	return NewResponse(NameGeneric, PriorityGeneric, input, Fields{
		Global: err.Error(),
		Code:   []string{CodeInternal},
	})
}
