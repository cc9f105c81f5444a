package util

import (
	"strings"

	"github.com/imdario/mergo"
	"github.com/openbehavior/fanout/config"
	"github.com/spf13/pflag"
)

func normalize(name string) string {
	from := []string{"-", "_"}
	to := "."
	for _, sep := range from {
		name = strings.Replace(name, sep, to, -1)
	}
	return strings.ToLower(name)
}

// NormalizeFlags allows for flags to be case and separator insensitive.
// Use it by passing it to cobra.Command.SetGlobalNormalizationFunc
func NormalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	lookup := map[string]string{"help": "help", normalize(name): name}

	f.VisitAll(func(f *pflag.Flag) {
		lookup[normalize(f.Name)] = f.Name
	})

	return pflag.NormalizedName(lookup[normalize(name)])
}

// MergeConfigFileWithFlags loads the config file (if a path was given)
// over the defaults, then merges flag values on top, so flags override
// the file and the file overrides defaults.
func MergeConfigFileWithFlags(file string, flagConf config.Config) (config.Config, error) {
	conf := config.DefaultConfig()
	if err := config.ParseFile(file, &conf); err != nil {
		return conf, err
	}

	// file vals <- cli vals
	if err := mergo.MergeWithOverwrite(&conf, flagConf); err != nil {
		return conf, err
	}
	return conf, nil
}
