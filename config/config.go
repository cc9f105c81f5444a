// Package config contains fanout's configuration structures and
// YAML file parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/openbehavior/fanout/logger"
)

// Config describes configuration for fanout.
type Config struct {
	Sweep  Sweep
	Docker Docker
	Logger logger.Config
}

// Sweep describes configuration for the sweep command, which expands a
// job template over a list of parameter values and submits one job
// per value.
type Sweep struct {
	// Token is the placeholder marker replaced in the job template,
	// e.g. "{MODEL}".
	Token string
	// SubmitCmd is the submission command line. It may contain a
	// "{PARTITION}" placeholder, which is replaced by Partition.
	SubmitCmd string
	// Partition is the scheduler partition/queue jobs are submitted to.
	Partition string
	// Concurrency bounds the number of in-flight submissions.
	// Values <= 1 submit sequentially.
	Concurrency int
	// Retries is the number of times a failed submission command is
	// retried before the value is reported as failed. Zero disables
	// retrying.
	Retries int
}

// Docker describes configuration for running data-preparation steps
// in a container.
type Docker struct {
	// Image is the container image holding the analysis environment.
	Image string
	// DataDir is the host path bind-mounted read-only as the container's
	// input data directory.
	DataDir string
	// OutputDir is the host path bind-mounted read-write as the
	// container's output directory.
	OutputDir string
	// RemoveOnExit passes --rm to the container runtime.
	RemoveOnExit bool
}

// ToYaml formats the configuration into YAML and returns the bytes.
func ToYaml(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// ToYamlFile writes the configuration to a YAML file.
func ToYamlFile(c Config, path string) error {
	b, err := ToYaml(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}

// ToYamlTempFile writes the configuration to a temporary YAML file.
// The returned cleanup function removes the file.
func ToYamlTempFile(c Config, name string) (path string, cleanup func()) {
	tmpdir, err := os.MkdirTemp("", "")
	if err != nil {
		panic(err)
	}
	cleanup = func() {
		os.RemoveAll(tmpdir)
	}
	p := filepath.Join(tmpdir, name)
	if err := ToYamlFile(c, p); err != nil {
		panic(err)
	}
	return p, cleanup
}

// Parse parses a YAML doc into the given Config instance.
func Parse(raw []byte, conf *Config) error {
	return yaml.Unmarshal(raw, conf)
}

// ParseFile parses a fanout config file, which is formatted in YAML,
// into the given Config struct. An empty path is a no-op.
func ParseFile(relpath string, conf *Config) error {
	if relpath == "" {
		return nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(relpath)
	if abserr != nil {
		path = relpath
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config at path %s: %v", path, err)
	}

	if err := Parse(source, conf); err != nil {
		return fmt.Errorf("failed to parse config at path %s: %v", path, err)
	}
	return nil
}
