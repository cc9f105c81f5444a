package prep

import (
	"context"
	"io"

	"github.com/openbehavior/fanout/config"
	"github.com/openbehavior/fanout/logger"
)

// In-container mount points for the data-preparation scripts.
const (
	DataMount   = "/data"
	OutputMount = "/output"
)

// Step is one data-preparation invocation, ready to run.
type Step struct {
	// Name identifies the step in logs and error reports.
	Name   string
	Docker *Docker
}

// Run runs the step's container.
func (s *Step) Run(ctx context.Context) error {
	return s.Docker.Run(ctx)
}

func newDocker(conf config.Docker, cmd []string, stdout, stderr io.Writer, log *logger.Logger) *Docker {
	return &Docker{
		Image: conf.Image,
		Volumes: []Volume{
			{HostPath: conf.DataDir, ContainerPath: DataMount, Readonly: true},
			{HostPath: conf.OutputDir, ContainerPath: OutputMount},
		},
		Cmd:          cmd,
		RemoveOnExit: conf.RemoveOnExit,
		Stdout:       stdout,
		Stderr:       stderr,
		Log:          log,
	}
}

// DVStep calculates derived variables for one experiment:
// "python calculate_exp_DVs.py <exp_id> <dataset>".
func DVStep(conf config.Docker, expID, dataset string, stdout, stderr io.Writer, log *logger.Logger) *Step {
	cmd := []string{"python", "calculate_exp_DVs.py", expID, dataset,
		"--out_dir", OutputMount}
	return &Step{
		Name:   "dvs:" + expID,
		Docker: newDocker(conf, cmd, stdout, stderr, log),
	}
}

// SaveDataStep downloads and saves raw study data:
// "python mturk_save_data.py [--job <job>] [--sandbox]".
func SaveDataStep(conf config.Docker, job string, sandbox bool, stdout, stderr io.Writer, log *logger.Logger) *Step {
	cmd := []string{"python", "mturk_save_data.py"}
	if job != "" {
		cmd = append(cmd, "--job", job)
	}
	if sandbox {
		cmd = append(cmd, "--sandbox")
	}
	return &Step{
		Name:   "save",
		Docker: newDocker(conf, cmd, stdout, stderr, log),
	}
}

// ExtractStep extracts time-1 CSV data:
// "Rscript extract_t1_csv_data.R <data> <output>".
func ExtractStep(conf config.Docker, stdout, stderr io.Writer, log *logger.Logger) *Step {
	cmd := []string{"Rscript", "extract_t1_csv_data.R", DataMount, OutputMount}
	return &Step{
		Name:   "extract",
		Docker: newDocker(conf, cmd, stdout, stderr, log),
	}
}
