package serializer

import (
	"fmt"
	"sort"
)

// NameFallback is the sentinel metadata name of responses synthesized by the
// serializer itself when no registered plugin matched.
const NameFallback = "Serializer"

// Serializer orchestrates dispatch: it owns an ordered plugin list and a
// subscriber list, probes plugins in priority order, synthesizes a fallback
// for unmatched inputs, and broadcasts every produced response.
//
// Register and Subscribe are setup-time operations. Calling either
// concurrently with Process on the same instance is a data race; this type
// provides no internal locking. Distinct instances are fully independent.
type Serializer struct {
	plugins     []ErrorPlugin
	subscribers []Subscriber
}

// New creates an empty serializer. Without registered plugins every input
// takes the fallback path.
func New() *Serializer {
	return &Serializer{}
}

// Register appends the plugin and re-sorts the list in strictly descending
// priority order. The sort is stable, so equal-priority plugins keep their
// relative registration order. Duplicate registrations of the same instance
// are not deduplicated, but since dispatch stops at the first match a later
// duplicate of equal priority never fires.
//
// Returns the serializer for chaining.
func (s *Serializer) Register(plugin ErrorPlugin) *Serializer {
	s.plugins = append(s.plugins, plugin)
	sort.SliceStable(s.plugins, func(i, j int) bool {
		return s.plugins[i].Priority() > s.plugins[j].Priority()
	})
	return s
}

// Subscribe appends a callback invoked with every response produced by
// Process, in registration order. Returns the serializer for chaining.
func (s *Serializer) Subscribe(subscriber Subscriber) *Serializer {
	s.subscribers = append(s.subscribers, subscriber)
	return s
}

// Plugins returns a copy of the plugin list in current dispatch order.
func (s *Serializer) Plugins() []ErrorPlugin {
	plugins := make([]ErrorPlugin, len(s.plugins))
	copy(plugins, s.plugins)
	return plugins
}

// Process serializes an arbitrary input value. Plugins are probed in sorted
// order and the first match wins, skipping all remaining plugins. When no
// plugin matches, a fallback response is synthesized; unrecognized input is
// not an error condition.
//
// After the response is fully constructed it is passed to every subscriber,
// synchronously and in subscription order, before being returned. Panics
// from a plugin's Serialize or from a subscriber are not recovered here: a
// panicking subscriber aborts notification of subsequent subscribers for
// this call.
func (s *Serializer) Process(input any) *Response {
	response := s.serialize(input)
	for _, subscriber := range s.subscribers {
		subscriber(response)
	}
	return response
}

func (s *Serializer) serialize(input any) *Response {
	for _, plugin := range s.plugins {
		if plugin.Match(input) {
			return plugin.Serialize(input)
		}
	}

	return NewResponse(NameFallback, PriorityFallback, input, Fields{
		Global: fallbackMessage(input),
		Code:   []string{CodeUnhandled},
	})
}

// fallbackMessage renders the input's string representation for the fallback
// response: "null" for a nil input, decimal text for numbers, fmt.Sprint for
// everything else.
func fallbackMessage(input any) string {
	if input == nil {
		return "null"
	}
	return fmt.Sprint(input)
}
