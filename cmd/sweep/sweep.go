// Package sweep contains the "fanout sweep" command, which expands a job
// template over a list of parameter values and submits one job per value.
package sweep

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/openbehavior/fanout/cmd/util"
	"github.com/openbehavior/fanout/config"
	"github.com/openbehavior/fanout/logger"
	"github.com/openbehavior/fanout/sweep"
	futil "github.com/openbehavior/fanout/util"
	"github.com/openbehavior/fanout/version"
	"github.com/spf13/cobra"
)

// Options holds the sweep command's own arguments, separate from the
// merged configuration.
type Options struct {
	TemplatePath string
	Values       []string
	ValuesFile   string
	DryRun       bool
}

// NewCommand returns the sweep command.
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	Run func(ctx context.Context, conf config.Config, opts Options, log *logger.Logger) error
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		Run: Run,
	}

	var (
		configFile string
		conf       config.Config
		flagConf   config.Config
		opts       Options
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expand a job template over parameter values and submit one job per value.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.TemplatePath == "" {
				return fmt.Errorf("no template was provided")
			}
			log := logger.NewLogger("sweep", conf.Logger)
			return hooks.Run(cmd.Context(), conf, opts, log)
		},
	}

	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	f := cmd.Flags()
	f.AddFlagSet(util.SweepFlags(&flagConf, &configFile))
	f.StringVarP(&opts.TemplatePath, "template", "t", opts.TemplatePath,
		"Path to the job template file")
	f.StringSliceVar(&opts.Values, "values", opts.Values,
		"Parameter value; can be given multiple times or comma-separated")
	f.StringVar(&opts.ValuesFile, "values-file", opts.ValuesFile,
		"File of parameter values, one per line")
	f.BoolVar(&opts.DryRun, "dry-run", opts.DryRun,
		"Render jobs to stdout without submitting")

	return cmd, hooks
}

// Run expands the template and submits the batch.
func Run(ctx context.Context, conf config.Config, opts Options, log *logger.Logger) error {
	log.Debug("Version", version.LogFields()...)

	tpl, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %v", err)
	}

	values := opts.Values
	if opts.ValuesFile != "" {
		fromFile, err := sweep.ReadValuesFile(opts.ValuesFile)
		if err != nil {
			return err
		}
		values = append(values, fromFile...)
	}

	var submitter sweep.Submitter
	if opts.DryRun {
		submitter = &printSubmitter{out: os.Stdout}
	} else {
		cs, err := sweep.NewCmdSubmitter(conf.Sweep.SubmitCmd, conf.Sweep.Partition)
		if err != nil {
			return err
		}
		if conf.Sweep.Retries > 0 {
			cs.Retrier = futil.NewRetrier(conf.Sweep.Retries + 1)
			cs.Retrier.Notify = func(err error, d time.Duration) {
				log.Warn("Retrying submission", "error", err, "backoff", d)
			}
		}
		submitter = cs
	}

	batch := &sweep.Batch{
		Template:    string(tpl),
		Token:       conf.Sweep.Token,
		Values:      values,
		Submitter:   submitter,
		Concurrency: conf.Sweep.Concurrency,
		Log:         log,
	}
	return batch.Run(ctx)
}

// printSubmitter renders to an output stream instead of a scheduler,
// backing the --dry-run flag.
type printSubmitter struct {
	out io.Writer
}

func (p *printSubmitter) Submit(ctx context.Context, jobText string) (string, error) {
	_, err := fmt.Fprintf(p.out, "---\n%s", jobText)
	return "", err
}
