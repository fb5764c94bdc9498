package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fmizzell/tickgraph"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TICKGRAPH"

// config is the resolved run configuration.
// Precedence: flag > TICKGRAPH_* environment (.env included) > config file > default.
type config struct {
	Format  tickgraph.Format
	Output  string
	Verbose bool
}

// formatValue is the --output-fmt flag; it rejects unknown formats at parse time.
type formatValue struct {
	format tickgraph.Format
}

func (f *formatValue) String() string {
	return f.format.String()
}

func (f *formatValue) Set(name string) error {
	format, err := tickgraph.ParseFormat(name)
	if err != nil {
		return err
	}
	f.format = format
	return nil
}

func (f *formatValue) Type() string {
	return "format"
}

var _ pflag.Value = (*formatValue)(nil)

func loadConfig(flags *pflag.FlagSet) (*config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	name := v.GetString("output-fmt")
	if name == "" {
		return nil, errors.New(`required flag "output-fmt" not set`)
	}
	format, err := tickgraph.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return &config{
		Format:  format,
		Output:  v.GetString("output"),
		Verbose: v.GetBool("verbose"),
	}, nil
}
