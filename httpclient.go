package serializer

import (
	"errors"
	"fmt"
)

// NameHTTPClient is the metadata name recorded by the HTTP client plugin.
const NameHTTPClient = "HTTPClientErrorPlugin"

// NetworkErrorMessage is the global message used when neither the response
// body nor the error itself carries one.
const NetworkErrorMessage = "Network Error"

// ClientResponse is the documented surface of an HTTP client error's
// response: the numeric status and the decoded body. Body is a
// map[string]any for JSON object bodies; any other value (raw HTML, text,
// nil) is treated as opaque.
type ClientResponse struct {
	Status int
	Body   any
}

// ClientError is the capability answering "is this an HTTP client transport
// error". Response returns nil when no response was received, e.g. a
// connection failure.
type ClientError interface {
	error
	Response() *ClientResponse
}

// RequestError is a ready-made ClientError for callers that do not have
// their own transport error type.
type RequestError struct {
	message  string
	response *ClientResponse
}

// NewRequestError creates a client error with the given native message and
// response. Pass a nil response for transport failures with no reply.
func NewRequestError(message string, response *ClientResponse) *RequestError {
	return &RequestError{message: message, response: response}
}

// Error returns the native message.
func (e *RequestError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Response returns the received response, or nil when none was received.
func (e *RequestError) Response() *ClientResponse {
	if e == nil {
		return nil
	}
	return e.response
}

// AsClientError extracts the client-error capability from an input. Plain
// values are type-asserted directly; error values are additionally searched
// through their wrapped chain.
func AsClientError(input any) (ClientError, bool) {
	if clientErr, ok := input.(ClientError); ok {
		return clientErr, true
	}
	if err, ok := input.(error); ok {
		var clientErr ClientError
		if errors.As(err, &clientErr) {
			return clientErr, true
		}
	}
	return nil, false
}

// HTTPClientPlugin serializes HTTP client transport errors, extracting the
// message, codes, status, and flattened field errors from the response body.
type HTTPClientPlugin struct{}

// NewHTTPClientPlugin creates an HTTP client plugin.
func NewHTTPClientPlugin() *HTTPClientPlugin {
	return &HTTPClientPlugin{}
}

// Name returns NameHTTPClient.
func (p *HTTPClientPlugin) Name() string {
	return NameHTTPClient
}

// Priority returns PriorityTransport.
func (p *HTTPClientPlugin) Priority() Priority {
	return PriorityTransport
}

// Match reports whether the input carries the client-error capability.
func (p *HTTPClientPlugin) Match(input any) bool {
	_, ok := AsClientError(input)
	return ok
}

// Serialize builds the transport response. Status is 0 when no response was
// received, a meaningful value distinct from absent.
func (p *HTTPClientPlugin) Serialize(input any) *Response {
	clientErr, _ := AsClientError(input)
	response := clientErr.Response()

	status := 0
	var body map[string]any
	if response != nil {
		status = response.Status
		body, _ = response.Body.(map[string]any)
	}

	fields := Fields{
		Global: extractMessage(body, clientErr),
		Code:   extractCodes(body, status),
		Status: StatusOf(status),
	}
	if raw, ok := extractValidation(body); ok {
		flat := make(map[string]any)
		flattenValidation(raw, "", flat)
		fields.Validation = flat
	}

	return NewResponse(NameHTTPClient, PriorityTransport, input, fields)
}

// extractMessage resolves the global message: body "message", else body
// "error.message", else the error's own message, else NetworkErrorMessage.
// First non-empty wins.
func extractMessage(body map[string]any, clientErr ClientError) string {
	if message, ok := body["message"].(string); ok && message != "" {
		return message
	}
	if nested, ok := body["error"].(map[string]any); ok {
		if message, ok := nested["message"].(string); ok && message != "" {
			return message
		}
	}
	if message := clientErr.Error(); message != "" {
		return message
	}
	return NetworkErrorMessage
}

// extractCodes resolves the code list: body "code", else body "errorCode",
// else a synthesized HTTP_{status} code. A list value is used as-is (deduped,
// first-seen order); a scalar is wrapped as a one-element list.
func extractCodes(body map[string]any, status int) []string {
	raw, ok := body["code"]
	if !ok {
		raw, ok = body["errorCode"]
	}
	if !ok {
		return []string{HTTPStatusCode(status)}
	}

	switch v := raw.(type) {
	case []string:
		return newCodeSet(v...).values()
	case []any:
		codes := newCodeSet()
		for _, code := range v {
			codes.add(fmt.Sprint(code))
		}
		return codes.values()
	default:
		return []string{fmt.Sprint(v)}
	}
}

// extractValidation resolves the raw field-error object: body
// "validationErrors", else body "errors". Only object values qualify.
func extractValidation(body map[string]any) (map[string]any, bool) {
	if raw, ok := body["validationErrors"].(map[string]any); ok {
		return raw, true
	}
	if raw, ok := body["errors"].(map[string]any); ok {
		return raw, true
	}
	return nil, false
}

// flattenValidation converts a nested field-error object into a single-level
// map keyed by dot-joined paths. Objects recurse with an extended prefix;
// everything else is a leaf. A single-element array is unwrapped to its
// element; multi-element arrays and scalars are stored as-is. The original
// nesting is lost in exchange for uniform lookup by dotted key.
func flattenValidation(value map[string]any, prefix string, into map[string]any) {
	for key, child := range value {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		if nested, ok := child.(map[string]any); ok && nested != nil {
			flattenValidation(nested, path, into)
			continue
		}

		into[path] = unwrapLeaf(child)
	}
}

func unwrapLeaf(value any) any {
	switch v := value.(type) {
	case []any:
		if len(v) == 1 {
			return v[0]
		}
	case []string:
		if len(v) == 1 {
			return v[0]
		}
	}
	return value
}
