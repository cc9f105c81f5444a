package config

import (
	"testing"

	"github.com/go-test/deep"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Sweep.Token != "{MODEL}" {
		t.Fatalf("unexpected default token: %q", c.Sweep.Token)
	}
	if c.Sweep.SubmitCmd == "" {
		t.Fatal("expected a default submit command")
	}
	if c.Logger.Level != "info" {
		t.Fatalf("unexpected default log level: %q", c.Logger.Level)
	}
}

func TestYamlRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Sweep.Partition = "long"
	c.Sweep.Concurrency = 3
	c.Docker.Image = "sro/analysis:latest"

	b, err := ToYaml(c)
	if err != nil {
		t.Fatal(err)
	}

	var parsed Config
	if err := Parse(b, &parsed); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(c, parsed); diff != nil {
		t.Fatal(diff)
	}
}

func TestParseFile(t *testing.T) {
	c := DefaultConfig()
	c.Sweep.Partition = "gpu"
	path, cleanup := ToYamlTempFile(c, "fanout.conf.yml")
	defer cleanup()

	parsed := DefaultConfig()
	if err := ParseFile(path, &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.Sweep.Partition != "gpu" {
		t.Fatalf("unexpected partition: %q", parsed.Sweep.Partition)
	}

	// An empty path is a no-op.
	if err := ParseFile("", &parsed); err != nil {
		t.Fatal(err)
	}

	// A missing file is an error.
	if err := ParseFile("no-such-config.yml", &parsed); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
