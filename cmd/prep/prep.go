// Package prep contains the "fanout prep" commands, which run the
// data-preparation scripts inside the analysis container.
package prep

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/openbehavior/fanout/cmd/util"
	"github.com/openbehavior/fanout/config"
	"github.com/openbehavior/fanout/logger"
	"github.com/openbehavior/fanout/prep"
	"github.com/spf13/cobra"
)

// NewCommand returns the prep command.
func NewCommand() *cobra.Command {
	cmd, _ := newCommandHooks()
	return cmd
}

type hooks struct {
	RunStep func(ctx context.Context, step *prep.Step, log *logger.Logger) error
}

func runStep(ctx context.Context, step *prep.Step, log *logger.Logger) error {
	log.Info("Running step", "step", step.Name)
	return step.Run(ctx)
}

func newCommandHooks() (*cobra.Command, *hooks) {
	hooks := &hooks{
		RunStep: runStep,
	}

	var (
		configFile string
		conf       config.Config
		flagConf   config.Config
	)

	cmd := &cobra.Command{
		Use:   "prep",
		Short: "Run dataset preparation steps in the analysis container.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			conf, err = util.MergeConfigFileWithFlags(configFile, flagConf)
			if err != nil {
				return fmt.Errorf("error processing config: %v", err)
			}
			return prep.CheckRuntime()
		},
	}
	cmd.SetGlobalNormalizationFunc(util.NormalizeFlags)
	cmd.PersistentFlags().AddFlagSet(util.PrepFlags(&flagConf, &configFile))

	var (
		expIDs  []string
		dataset string
	)
	dvs := &cobra.Command{
		Use:   "dvs",
		Short: "Calculate derived variables for one or more experiments.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(expIDs) == 0 {
				return fmt.Errorf("no experiment IDs were provided")
			}
			log := logger.NewLogger("prep", conf.Logger)

			// One failing experiment doesn't stop the rest; failures are
			// reported together at the end.
			var result *multierror.Error
			for _, id := range expIDs {
				step := prep.DVStep(conf.Docker, id, dataset, os.Stdout, os.Stderr, log)
				if err := hooks.RunStep(cmd.Context(), step, log); err != nil {
					log.Error("Step failed", "step", step.Name, "error", err)
					result = multierror.Append(result, fmt.Errorf("%s: %v", id, err))
				}
			}
			return result.ErrorOrNil()
		},
	}
	f := dvs.Flags()
	f.StringSliceVar(&expIDs, "exp-id", expIDs, "Experiment ID; can be given multiple times")
	f.StringVar(&dataset, "dataset", "mturk_complete", "Dataset label passed to the DV script")
	cmd.AddCommand(dvs)

	var (
		job     string
		sandbox bool
	)
	save := &cobra.Command{
		Use:   "save",
		Short: "Download and save raw study data.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("prep", conf.Logger)
			step := prep.SaveDataStep(conf.Docker, job, sandbox, os.Stdout, os.Stderr, log)
			return hooks.RunStep(cmd.Context(), step, log)
		},
	}
	f = save.Flags()
	f.StringVar(&job, "job", job, "Job name passed to the save script")
	f.BoolVar(&sandbox, "sandbox", sandbox, "Use the sandbox endpoint")
	cmd.AddCommand(save)

	extract := &cobra.Command{
		Use:   "extract",
		Short: "Extract time-1 CSV data.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("prep", conf.Logger)
			step := prep.ExtractStep(conf.Docker, os.Stdout, os.Stderr, log)
			return hooks.RunStep(cmd.Context(), step, log)
		},
	}
	cmd.AddCommand(extract)

	return cmd, hooks
}
