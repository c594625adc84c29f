package serializer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	input := errors.New("boom")
	resp := NewResponse("TestPlugin", 3, input, Fields{
		Global: "something broke",
		Code:   []string{"E_ONE"},
		Status: StatusOf(500),
		Validation: map[string]any{
			"field": []string{"bad"},
		},
	})

	require.Equal(t, "TestPlugin", resp.Metadata.Plugin)
	require.Equal(t, 3, resp.Metadata.Priority)
	require.True(t, resp.Err == input)
	require.Equal(t, "something broke", resp.Global)
	require.Equal(t, []string{"E_ONE"}, resp.Code)
	require.Equal(t, 500, *resp.Status)
	require.Equal(t, map[string]any{"field": []string{"bad"}}, resp.Validation)
}

func TestNewResponse_EmptyFields(t *testing.T) {
	resp := NewResponse(NameFallback, PriorityFallback, nil, Fields{})

	require.Equal(t, NameFallback, resp.Metadata.Plugin)
	require.Nil(t, resp.Err)
	require.Empty(t, resp.Global)
	require.Nil(t, resp.Code)
	require.Nil(t, resp.Status)
	require.Nil(t, resp.Validation)
}

func TestStatusOf(t *testing.T) {
	zero := StatusOf(0)

	require.NotNil(t, zero)
	require.Equal(t, 0, *zero)
}

func TestResponse_ToJSON(t *testing.T) {
	resp := NewResponse("TestPlugin", 2, errors.New("internal detail"), Fields{
		Global: "boom",
		Code:   []string{"E_ONE", "E_TWO"},
		Status: StatusOf(422),
		Validation: map[string]any{
			"name": []string{"required"},
		},
	})

	data, err := resp.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Equal(t, map[string]any{
		"plugin":   "TestPlugin",
		"priority": float64(2),
	}, decoded["metadata"])
	require.Equal(t, "boom", decoded["global"])
	require.Equal(t, []any{"E_ONE", "E_TWO"}, decoded["code"])
	require.Equal(t, float64(422), decoded["status"])
	require.Equal(t, map[string]any{"name": []any{"required"}}, decoded["validation"])

	// The retained input never leaks into the payload.
	require.NotContains(t, string(data), "internal detail")
}

func TestResponse_ToJSON_OptionalFieldsOmitted(t *testing.T) {
	resp := NewResponse(NameGeneric, PriorityGeneric, errors.New("boom"), Fields{
		Global: "boom",
		Code:   []string{CodeInternal},
	})

	data, err := resp.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.NotContains(t, decoded, "status")
	require.NotContains(t, decoded, "validation")
}

func TestResponse_ToJSON_ZeroStatusPresent(t *testing.T) {
	// Status 0 is a meaningful value, distinct from absent.
	resp := NewResponse(NameHTTPClient, PriorityTransport, errors.New("boom"), Fields{
		Global: NetworkErrorMessage,
		Code:   []string{"HTTP_0"},
		Status: StatusOf(0),
	})

	data, err := resp.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Contains(t, decoded, "status")
	require.Equal(t, float64(0), decoded["status"])
}

func TestIsFallback(t *testing.T) {
	tests := []struct {
		name     string
		response *Response
		want     bool
	}{
		{"fallback response", New().Process(nil), true},
		{"plugin response", NewGenericPlugin().Serialize(errors.New("boom")), false},
		{"nil response", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsFallback(tt.response))
		})
	}
}

func TestHandledBy(t *testing.T) {
	resp := NewGenericPlugin().Serialize(errors.New("boom"))

	require.True(t, HandledBy(resp, NameGeneric))
	require.False(t, HandledBy(resp, NameValidation))
	require.False(t, HandledBy(nil, NameGeneric))
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{404, "HTTP_404"},
		{0, "HTTP_0"},
		{500, "HTTP_500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, HTTPStatusCode(tt.status))
		})
	}
}
