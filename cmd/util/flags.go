// Package util contains helpers shared by the fanout CLI commands.
package util

import (
	"github.com/openbehavior/fanout/config"
	"github.com/spf13/pflag"
)

// SweepFlags returns a flag set for configuring the sweep command.
func SweepFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config file")
	f.StringVar(&flagConf.Sweep.Token, "Sweep.Token", flagConf.Sweep.Token,
		"Placeholder token replaced in the job template")
	f.StringVar(&flagConf.Sweep.SubmitCmd, "Sweep.SubmitCmd", flagConf.Sweep.SubmitCmd,
		"Submission command; may contain "+"{PARTITION}")
	f.StringVar(&flagConf.Sweep.Partition, "Sweep.Partition", flagConf.Sweep.Partition,
		"Scheduler partition/queue name")
	f.IntVar(&flagConf.Sweep.Concurrency, "Sweep.Concurrency", flagConf.Sweep.Concurrency,
		"Max in-flight submissions; <= 1 submits sequentially")
	f.IntVar(&flagConf.Sweep.Retries, "Sweep.Retries", flagConf.Sweep.Retries,
		"Retries per failed submission command")
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

// PrepFlags returns a flag set for configuring the prep commands.
func PrepFlags(flagConf *config.Config, configFile *string) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVarP(configFile, "config", "c", *configFile, "Config file")
	f.StringVar(&flagConf.Docker.Image, "Docker.Image", flagConf.Docker.Image,
		"Container image holding the analysis environment")
	f.StringVar(&flagConf.Docker.DataDir, "Docker.DataDir", flagConf.Docker.DataDir,
		"Host data directory, mounted read-only")
	f.StringVar(&flagConf.Docker.OutputDir, "Docker.OutputDir", flagConf.Docker.OutputDir,
		"Host output directory, mounted read-write")
	f.BoolVar(&flagConf.Docker.RemoveOnExit, "Docker.RemoveOnExit", flagConf.Docker.RemoveOnExit,
		"Remove the container when the step finishes")
	f.AddFlagSet(loggerFlags(flagConf))

	return f
}

func loggerFlags(flagConf *config.Config) *pflag.FlagSet {
	f := pflag.NewFlagSet("", pflag.ContinueOnError)

	f.StringVar(&flagConf.Logger.Level, "Logger.Level", flagConf.Logger.Level,
		"Level of logging")
	f.StringVar(&flagConf.Logger.Formatter, "Logger.Formatter", flagConf.Logger.Formatter,
		"Logging format, one of: text, json")
	f.StringVar(&flagConf.Logger.OutputFile, "Logger.OutputFile", flagConf.Logger.OutputFile,
		"File path to write logs to")

	return f
}
