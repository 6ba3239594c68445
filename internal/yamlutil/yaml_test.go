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

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: docs\ncount: 3\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "docs" || s.Count != 3 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshal_InvalidInput(t *testing.T) {
	t.Parallel()

	var s sample

	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data: got %v, want ErrNilData", err)
	}
	if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination: got %v, want ErrNilDestination", err)
	}

	big := []byte(strings.Repeat("a", MaxInputSize+1))
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input: got %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: docs\nbogus: 1\n"), &s)
	if err == nil {
		t.Fatal("strict mode should reject unknown fields")
	}
}

func TestUnmarshalStrict_Valid(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: docs\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Name != "docs" {
		t.Errorf("got %+v", s)
	}
}
