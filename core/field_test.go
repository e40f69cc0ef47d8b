package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_StringValue(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"string", Field{Type: StringType, Str: "hello"}, "hello"},
		{"int", Field{Type: IntType, Int64: 42}, "42"},
		{"int64", Field{Type: Int64Type, Int64: 1234567890}, "1234567890"},
		{"float64", Field{Type: Float64Type, Float64: 3.5}, "3.5"},
		{"bool true", Field{Type: BoolType, Int64: 1}, "true"},
		{"bool false", Field{Type: BoolType, Int64: 0}, "false"},
		{"time", Field{Type: TimeType, Int64: ts.UnixNano()}, ts.Format(time.RFC3339)},
		{"duration", Field{Type: DurationType, Int64: int64(1500 * time.Millisecond)}, "1.5s"},
		{"error", Field{Type: ErrorType, Str: errors.New("boom").Error()}, "boom"},
		{"any", Field{Type: AnyType, Any: []int{1, 2}}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("StringValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
