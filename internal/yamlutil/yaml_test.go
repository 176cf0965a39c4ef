package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	var s sample
	if err := DecodeStrict([]byte("name: doc\ncount: 3\n"), &s); err != nil {
		t.Fatalf("DecodeStrict() error = %v", err)
	}
	if s.Name != "doc" || s.Count != 3 {
		t.Errorf("DecodeStrict() = %+v", s)
	}
}

func TestDecodeStrict_EmptyDocumentKeepsTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "whitespace only", data: []byte(" \n\t\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := sample{Name: "kept", Count: 9}
			if err := DecodeStrict(tt.data, &s); err != nil {
				t.Fatalf("DecodeStrict() error = %v", err)
			}
			if s.Name != "kept" || s.Count != 9 {
				t.Errorf("DecodeStrict() mutated target: %+v", s)
			}
		})
	}
}

func TestDecodeStrict_NoTarget(t *testing.T) {
	t.Parallel()

	if err := DecodeStrict([]byte("a: 1"), nil); !errors.Is(err, ErrNoTarget) {
		t.Errorf("DecodeStrict() error = %v, want ErrNoTarget", err)
	}
}

func TestDecodeStrict_TooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("name: " + strings.Repeat("x", MaxDocumentSize))
	var s sample
	if err := DecodeStrict(big, &s); !errors.Is(err, ErrTooLarge) {
		t.Errorf("DecodeStrict() error = %v, want ErrTooLarge", err)
	}
}

func TestDecodeStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var s sample
	if err := DecodeStrict([]byte("name: doc\nbogus: 1\n"), &s); err == nil {
		t.Error("DecodeStrict() accepted an unknown field")
	}
}
