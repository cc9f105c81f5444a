package sweep

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestParseValues(t *testing.T) {
	in := `
# HDDM models to fit
ddm_a.model
ddm_v.model

  ddm_t.model
ddm_a.model
`
	values, err := ParseValues(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	// Order preserved, comments and blanks dropped, duplicates kept.
	want := []string{"ddm_a.model", "ddm_v.model", "ddm_t.model", "ddm_a.model"}
	if diff := deep.Equal(values, want); diff != nil {
		t.Fatal(diff)
	}
}

func TestParseValuesEmpty(t *testing.T) {
	values, err := ParseValues(strings.NewReader("# only a comment\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 0 {
		t.Fatalf("expected no values, got %v", values)
	}
}

func TestReadValuesFileMissing(t *testing.T) {
	if _, err := ReadValuesFile("does-not-exist.txt"); err == nil {
		t.Fatal("expected an error for a missing values file")
	}
}
