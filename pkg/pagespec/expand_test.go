package pagespec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandBrackets(t *testing.T) {
	got, err := ExpandBrackets([]string{"[1, 3]east"})
	if err != nil {
		t.Fatalf("ExpandBrackets failed: %v", err)
	}
	want := []string{"1east", "3east"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandBracketsMixed(t *testing.T) {
	got, err := ExpandBrackets([]string{"5", "[1,2]even"})
	if err != nil {
		t.Fatalf("ExpandBrackets failed: %v", err)
	}
	want := []string{"5", "1even", "2even"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandBracketsSuffixComma(t *testing.T) {
	// Ambiguous: ([1,2]even),3 or [1,2](even,3)?
	_, err := ExpandBrackets([]string{"[1, 2]even, 3"})
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestExpandBracketsUnclosed(t *testing.T) {
	_, err := ExpandBrackets([]string{"[1,2east"})
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestExpandBracketsEmptyGroup(t *testing.T) {
	// An empty group must not vanish from the spec list.
	for _, tok := range []string{"[]", "[]east", "[ ]"} {
		_, err := ExpandBrackets([]string{tok})
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("ExpandBrackets(%q): expected SyntaxError, got %v", tok, err)
		}
	}
}

func TestExpandBracketsEmptyMember(t *testing.T) {
	_, err := ExpandBrackets([]string{"[1,,3]east"})
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten([]string{"1", "", "2,3", " 4 , 5 "})
	want := []string{"1", "2", "3", "4", "5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSpecsCompound(t *testing.T) {
	specs, err := ParseSpecs([]string{"[1-3,7]west"})
	if err != nil {
		t.Fatalf("ParseSpecs failed: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if specs[0].Rotation != West || specs[1].Rotation != West {
		t.Errorf("rotation suffix not applied to all members: %v", specs)
	}
	if specs[1].Start != Literal(7) || specs[1].End != Literal(7) {
		t.Errorf("unexpected second member: %+v", specs[1])
	}
}
