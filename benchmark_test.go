package serializer

import (
	"errors"
	"testing"
)

func newBenchSerializer() *Serializer {
	return New().
		Register(NewValidationPlugin(ValidationConfig{})).
		Register(NewHTTPClientPlugin()).
		Register(NewGenericPlugin())
}

func BenchmarkProcess_Generic(b *testing.B) {
	s := newBenchSerializer()
	input := errors.New("boom")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Process(input)
	}
}

func BenchmarkProcess_Fallback(b *testing.B) {
	s := newBenchSerializer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Process(42)
	}
}

func BenchmarkProcess_ValidationFlat(b *testing.B) {
	s := newBenchSerializer()
	input := NewValidationError(
		Issue{Path: []any{"user", 0, "email"}, Message: "invalid"},
		Issue{Path: []any{"user", 0, "name"}, Message: "required"},
		Issue{Path: []any{"user", 1, "email"}, Message: "taken"},
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Process(input)
	}
}

func BenchmarkProcess_ValidationNested(b *testing.B) {
	s := New().
		Register(NewValidationPlugin(ValidationConfig{Structure: StructureNested})).
		Register(NewGenericPlugin())
	input := NewValidationError(
		Issue{Path: []any{"user", 0, "email"}, Message: "invalid"},
		Issue{Path: []any{"user", 0, "name"}, Message: "required"},
		Issue{Path: []any{"user", 1, "email"}, Message: "taken"},
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Process(input)
	}
}

func BenchmarkFlattenValidation(b *testing.B) {
	raw := map[string]any{
		"user": map[string]any{
			"email": []any{"invalid"},
			"roles": []any{"Admin", "Editor"},
			"org": map[string]any{
				"name": []any{"required"},
			},
		},
		"status": []any{400},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		into := make(map[string]any)
		flattenValidation(raw, "", into)
	}
}
