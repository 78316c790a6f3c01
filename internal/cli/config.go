package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hillclimb/pkg/api"
	apperr "github.com/matzehuels/hillclimb/pkg/errors"
	"github.com/matzehuels/hillclimb/pkg/pipeline"
)

// Config is the on-disk configuration. Command-line flags override it.
type Config struct {
	DataPath string      `toml:"data_path"`
	Workers  int         `toml:"workers"`
	Timeout  Duration    `toml:"timeout"`
	Graph    string      `toml:"graph"`
	Verbose  bool        `toml:"verbose"`
	Serve    ServeConfig `toml:"serve"`

	// path is the file the config was read from; empty for defaults.
	path string
}

// ServeConfig holds settings for the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		DataPath: pipeline.DefaultDataPath,
		Timeout:  Duration{pipeline.DefaultTimeout},
		Graph:    pipeline.DefaultGraph,
		Serve:    ServeConfig{Addr: api.DefaultAddr},
	}
}

// loadConfig reads the config file at path over the defaults. With an empty
// path the default location is tried and a missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), apperr.Wrap(apperr.ErrCodeInvalidInput, err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return DefaultConfig(), apperr.New(apperr.ErrCodeInvalidInput,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), apperr.Wrap(apperr.ErrCodeInvalidInput, err, "config %s", path)
	}
	cfg.path = path
	return cfg, nil
}

func (c Config) validate() error {
	if err := pipeline.ValidateGraphMode(c.Graph); err != nil {
		return err
	}
	if err := apperr.ValidateWorkers(c.Workers); err != nil {
		return err
	}
	if err := apperr.ValidateTimeout(c.Timeout.Duration); err != nil {
		return err
	}
	return apperr.ValidatePath(c.DataPath)
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configFile
			if path == "" {
				p, err := defaultConfigPath()
				if err != nil {
					return fmt.Errorf("get config dir: %w", err)
				}
				path = p
			}
			fmt.Fprintln(c.Out, path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Config.path == "" {
				loggerFromContext(cmd.Context()).Warn("no config file found, showing defaults")
			} else {
				loggerFromContext(cmd.Context()).Debug("loaded config", "path", c.Config.path)
			}
			return toml.NewEncoder(c.Out).Encode(c.Config)
		},
	}
}
