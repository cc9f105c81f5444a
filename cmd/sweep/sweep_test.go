package sweep

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openbehavior/fanout/config"
	"github.com/openbehavior/fanout/logger"
)

func TestSweepCommandWiring(t *testing.T) {
	tmp := t.TempDir()

	tplPath := filepath.Join(tmp, "job.sbatch")
	if err := os.WriteFile(tplPath, []byte("run {MODEL}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fileConf := config.DefaultConfig()
	fileConf.Sweep.Retries = 3
	confPath, cleanup := config.ToYamlTempFile(fileConf, "fanout.conf.yml")
	defer cleanup()

	c, h := newCommandHooks()
	var gotConf config.Config
	var gotOpts Options
	h.Run = func(ctx context.Context, conf config.Config, opts Options, l *logger.Logger) error {
		gotConf = conf
		gotOpts = opts
		return nil
	}

	c.SetArgs([]string{
		"--config", confPath,
		"--template", tplPath,
		"--values", "a.model,b.model",
		"--sweep-partition", "gpu",
		"--dry-run",
	})
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}

	if gotOpts.TemplatePath != tplPath {
		t.Fatalf("unexpected template path: %q", gotOpts.TemplatePath)
	}
	if len(gotOpts.Values) != 2 || gotOpts.Values[0] != "a.model" {
		t.Fatalf("unexpected values: %v", gotOpts.Values)
	}
	if !gotOpts.DryRun {
		t.Fatal("expected dry-run to be set")
	}
	// Flag overrides default; file value survives.
	if gotConf.Sweep.Partition != "gpu" {
		t.Fatalf("unexpected partition: %q", gotConf.Sweep.Partition)
	}
	if gotConf.Sweep.Retries != 3 {
		t.Fatalf("unexpected retries: %d", gotConf.Sweep.Retries)
	}
}

func TestSweepRequiresTemplate(t *testing.T) {
	c, h := newCommandHooks()
	called := false
	h.Run = func(ctx context.Context, conf config.Config, opts Options, l *logger.Logger) error {
		called = true
		return nil
	}

	c.SetArgs([]string{"--values", "a.model"})
	if err := c.Execute(); err == nil {
		t.Fatal("expected an error when no template is given")
	}
	if called {
		t.Fatal("run hook should not be called without a template")
	}
}

func TestRunReadsValuesFile(t *testing.T) {
	tmp := t.TempDir()

	tplPath := filepath.Join(tmp, "job.sbatch")
	if err := os.WriteFile(tplPath, []byte("run {MODEL}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	valsPath := filepath.Join(tmp, "models.txt")
	if err := os.WriteFile(valsPath, []byte("# models\na.model\nb.model\n"), 0644); err != nil {
		t.Fatal(err)
	}

	conf := config.DefaultConfig()
	log := logger.NewNopLogger()

	// Dry run renders without needing a scheduler on PATH.
	err := Run(context.Background(), conf, Options{
		TemplatePath: tplPath,
		ValuesFile:   valsPath,
		DryRun:       true,
	}, log)
	if err != nil {
		t.Fatal(err)
	}
}

func TestRunMissingTemplateIsFatal(t *testing.T) {
	conf := config.DefaultConfig()
	log := logger.NewNopLogger()

	err := Run(context.Background(), conf, Options{
		TemplatePath: "no-such-template.sbatch",
		Values:       []string{"a.model"},
		DryRun:       true,
	}, log)
	if err == nil {
		t.Fatal("expected an error for a missing template")
	}
}
