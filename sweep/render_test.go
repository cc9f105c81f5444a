package sweep

import "testing"

func TestRender(t *testing.T) {
	tpl := "run model {MODEL}"

	got := Render(tpl, "{MODEL}", "a.model")
	if got != "run model a.model" {
		t.Fatalf("unexpected rendering: %q", got)
	}

	// Rendering is pure; the same inputs yield the same output.
	again := Render(tpl, "{MODEL}", "a.model")
	if again != got {
		t.Fatalf("rendering is not idempotent: %q != %q", again, got)
	}
}

func TestRenderReplacesAllOccurrences(t *testing.T) {
	tpl := "#SBATCH --job-name {MODEL}\npython fit.py {MODEL}\n"

	got := Render(tpl, "{MODEL}", "ddm")
	want := "#SBATCH --job-name ddm\npython fit.py ddm\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if TokenCount(got, "{MODEL}") != 0 {
		t.Fatal("rendered output still contains the token")
	}
}

func TestRenderWithoutToken(t *testing.T) {
	tpl := "run model"
	if got := Render(tpl, "{MODEL}", "a.model"); got != tpl {
		t.Fatalf("template without token should be unchanged, got %q", got)
	}
}

func TestTokenCount(t *testing.T) {
	if n := TokenCount("a {X} b {X}", "{X}"); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if n := TokenCount("a b", "{X}"); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
	if n := TokenCount("anything", ""); n != 0 {
		t.Fatalf("empty token should count 0, got %d", n)
	}
}
