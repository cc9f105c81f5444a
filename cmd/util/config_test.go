package util

import (
	"testing"

	"github.com/openbehavior/fanout/config"
)

func TestMergeConfigFileWithFlags(t *testing.T) {
	fileConf := config.DefaultConfig()
	fileConf.Sweep.Partition = "long"
	fileConf.Sweep.Retries = 2
	path, cleanup := config.ToYamlTempFile(fileConf, "fanout.conf.yml")
	defer cleanup()

	var flagConf config.Config
	flagConf.Sweep.Partition = "gpu"

	conf, err := MergeConfigFileWithFlags(path, flagConf)
	if err != nil {
		t.Fatal(err)
	}

	// Flags override the file.
	if conf.Sweep.Partition != "gpu" {
		t.Fatalf("expected flag to win, got %q", conf.Sweep.Partition)
	}
	// File values without flags survive.
	if conf.Sweep.Retries != 2 {
		t.Fatalf("expected file value to survive, got %d", conf.Sweep.Retries)
	}
	// Defaults fill the rest.
	if conf.Sweep.Token != "{MODEL}" {
		t.Fatalf("expected default token, got %q", conf.Sweep.Token)
	}
}

func TestMergeConfigMissingFile(t *testing.T) {
	if _, err := MergeConfigFileWithFlags("no-such-file.yml", config.Config{}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
