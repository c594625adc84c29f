package serializer

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// NameValidation is the metadata name recorded by the validation plugin.
const NameValidation = "ValidationErrorPlugin"

// ValidationMessage is the fixed global message of every validation response.
const ValidationMessage = "Validation failed"

// Issue is one reported problem within a validation aggregate: an ordered
// field path and a human-readable message.
type Issue struct {
	// Path is the ordered sequence of field-path segments. Only string and
	// int segments are serializable; segments of any other type are dropped
	// silently during serialization.
	Path []any

	// Message describes the problem at Path.
	Message string
}

// IssueOverride is the result of a MapIssue hook. A non-empty Message
// replaces the issue's own message for that entry; a non-empty Code is added
// to the response code set.
type IssueOverride struct {
	Code    string
	Message string
}

// ValidationAggregate is the capability answering "is this a validation
// error family": any value carrying an ordered list of issues.
type ValidationAggregate interface {
	Issues() []Issue
}

// ValidationError is a ready-made validation aggregate for callers that do
// not have their own. It is immutable once created.
type ValidationError struct {
	issues []Issue
}

// NewValidationError creates an aggregate from the given issues. The slice
// is copied defensively.
func NewValidationError(issues ...Issue) *ValidationError {
	copied := make([]Issue, len(issues))
	copy(copied, issues)
	return &ValidationError{issues: copied}
}

// Error returns a compact string representation.
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("validation failed with %d issue(s)", len(e.issues))
}

// Issues returns a defensive copy of the aggregate's issues, in reported
// order.
func (e *ValidationError) Issues() []Issue {
	if e == nil {
		return nil
	}
	copied := make([]Issue, len(e.issues))
	copy(copied, e.issues)
	return copied
}

// AsValidationAggregate extracts the validation capability from an input.
// Plain values are type-asserted directly; error values are additionally
// searched through their wrapped chain.
func AsValidationAggregate(input any) (ValidationAggregate, bool) {
	if agg, ok := input.(ValidationAggregate); ok {
		return agg, true
	}
	if err, ok := input.(error); ok {
		var agg ValidationAggregate
		if errors.As(err, &agg) {
			return agg, true
		}
	}
	return nil, false
}

// Structure selects the output shape of the validation map.
type Structure string

const (
	// StructureFlat joins each issue's path into a single separator-joined
	// key. This is the default.
	StructureFlat Structure = "flat"

	// StructureNested builds an object tree following the path segments as
	// successive keys. Integer segments become string keys, not list
	// indices.
	StructureNested Structure = "nested"
)

// MessageFormat selects how messages accumulate at a field key.
type MessageFormat string

const (
	// MessageArray accumulates every message for a key into a list. This is
	// the default.
	MessageArray MessageFormat = "array"

	// MessageString keeps only the first message ever written to a key;
	// later writes to the same key are ignored.
	MessageString MessageFormat = "string"
)

// DefaultKeySeparator joins path segments in flat mode when
// ValidationConfig.KeySeparator is unset.
const DefaultKeySeparator = "_"

// ValidationConfig configures a validation plugin. All fields are optional;
// the zero value selects flat structure, array message format, and the "_"
// separator. The configuration is fixed at construction.
type ValidationConfig struct {
	// Structure selects flat or nested output. Defaults to StructureFlat.
	Structure Structure

	// MessageFormat selects list or first-value-wins accumulation.
	// Defaults to MessageArray.
	MessageFormat MessageFormat

	// KeySeparator joins path segments in flat mode. Defaults to
	// DefaultKeySeparator.
	KeySeparator string

	// MapIssue, when set, is invoked with each raw issue before it is
	// written. A nil return leaves the issue untouched. It must be pure; a
	// panic propagates to the caller of Process.
	MapIssue func(Issue) *IssueOverride
}

// ValidationPlugin serializes validation aggregates into a field-keyed
// validation map with a fixed 422 status and the baseline code "102".
type ValidationPlugin struct {
	config ValidationConfig
}

// NewValidationPlugin creates a validation plugin with the given
// configuration. Unset fields take their documented defaults.
func NewValidationPlugin(config ValidationConfig) *ValidationPlugin {
	if config.Structure == "" {
		config.Structure = StructureFlat
	}
	if config.MessageFormat == "" {
		config.MessageFormat = MessageArray
	}
	if config.KeySeparator == "" {
		config.KeySeparator = DefaultKeySeparator
	}
	return &ValidationPlugin{config: config}
}

// Name returns NameValidation.
func (p *ValidationPlugin) Name() string {
	return NameValidation
}

// Priority returns PriorityValidation.
func (p *ValidationPlugin) Priority() Priority {
	return PriorityValidation
}

// Match reports whether the input carries the validation capability.
func (p *ValidationPlugin) Match(input any) bool {
	_, ok := AsValidationAggregate(input)
	return ok
}

// Serialize builds the validation response. Issues are processed in the
// aggregate's reported order.
func (p *ValidationPlugin) Serialize(input any) *Response {
	agg, _ := AsValidationAggregate(input)

	codes := newCodeSet(CodeValidation)
	validation := make(map[string]any)

	for _, issue := range agg.Issues() {
		message := issue.Message
		if p.config.MapIssue != nil {
			if override := p.config.MapIssue(issue); override != nil {
				if override.Message != "" {
					message = override.Message
				}
				if override.Code != "" {
					codes.add(override.Code)
				}
			}
		}

		segments := pathSegments(issue.Path)
		if p.config.Structure == StructureNested {
			p.writeNested(validation, segments, message)
		} else {
			key := strings.Join(segments, p.config.KeySeparator)
			p.writeMessage(validation, key, message)
		}
	}

	return NewResponse(NameValidation, PriorityValidation, input, Fields{
		Global:     ValidationMessage,
		Code:       codes.values(),
		Status:     StatusOf(http.StatusUnprocessableEntity),
		Validation: validation,
	})
}

// pathSegments filters an issue path down to its serializable segments.
// Strings pass through, ints render in decimal, everything else is dropped.
func pathSegments(path []any) []string {
	segments := make([]string, 0, len(path))
	for _, segment := range path {
		switch v := segment.(type) {
		case string:
			segments = append(segments, v)
		case int:
			segments = append(segments, strconv.Itoa(v))
		}
	}
	return segments
}

// writeMessage records a message at key per the configured message format.
// Array mode appends; string mode keeps the first value ever written.
func (p *ValidationPlugin) writeMessage(target map[string]any, key, message string) {
	if p.config.MessageFormat == MessageString {
		if _, exists := target[key]; !exists {
			target[key] = message
		}
		return
	}

	// A previously written non-list value (a structural conflict) is
	// replaced: last write wins.
	existing, _ := target[key].([]string)
	target[key] = append(existing, message)
}

// writeNested walks or creates the object tree along the path segments and
// records the message at the terminal segment. An intermediate level holding
// a non-object value is overwritten with a fresh object: last write wins.
func (p *ValidationPlugin) writeNested(target map[string]any, segments []string, message string) {
	if len(segments) == 0 {
		return
	}

	current := target
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	p.writeMessage(current, segments[len(segments)-1], message)
}
