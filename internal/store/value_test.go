package store

import (
	"encoding/json"
	"testing"
)

func TestValueJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"string", valueOf("hello"), `"hello"`},
		{"bool", valueOf(true), `true`},
		{"int", valueOf(42), `42`},
		{"float", valueOf(2.5), `2.5`},
		{"list", valueOf([]string{"a", "b"}), `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.val)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, data)
			}

			var back Value
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if back.Kind() != tt.val.Kind() {
				t.Errorf("Kind changed across round trip: %v -> %v", tt.val.Kind(), back.Kind())
			}
		})
	}
}

func TestValueUnmarshalRejectsUnsupported(t *testing.T) {
	inputs := []string{
		`null`,
		`{"nested": "object"}`,
		`["mixed", 1]`,
		`[1, 2, 3]`,
	}

	for _, input := range inputs {
		var v Value
		if err := json.Unmarshal([]byte(input), &v); err == nil {
			t.Errorf("Expected error for %s", input)
		}
	}
}

func TestValueIntegralNumberDecodesAsInt(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`7`), &v); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if v.Kind() != KindInt {
		t.Errorf("Expected KindInt, got %v", v.Kind())
	}

	if err := json.Unmarshal([]byte(`7.25`), &v); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if v.Kind() != KindFloat {
		t.Errorf("Expected KindFloat, got %v", v.Kind())
	}
}

func TestValueOfCopiesList(t *testing.T) {
	src := []string{"a", "b"}
	v := valueOf(src)
	src[0] = "mutated"

	got, ok := coerce[[]string](v)
	if !ok {
		t.Fatal("Expected list coercion to succeed")
	}
	if got[0] != "a" {
		t.Errorf("Stored list should be a copy, got %v", got)
	}
}

func TestKindString(t *testing.T) {
	if KindStringList.String() != "string-list" {
		t.Errorf("Unexpected kind name: %s", KindStringList)
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("Unexpected name for invalid kind: %s", Kind(99))
	}
}
