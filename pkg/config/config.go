package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
	"github.com/matzehuels/dotbuilder/pkg/render"
)

const (
	appName  = "dotbuilder"
	fileName = "config.toml"
)

// Renderer selects and configures the Graphviz renderer.
type Renderer struct {
	Engine    string `toml:"engine"`
	Format    string `toml:"format"`
	InProcess bool   `toml:"in_process"`
}

// Config is the tool configuration.
type Config struct {
	Renderer        Renderer `toml:"renderer"`
	Open            bool     `toml:"open"`
	OutputDir       string   `toml:"output_dir"`
	NonDirectional  bool     `toml:"non_directional"`
	DuplicatesEqual bool     `toml:"duplicates_equal"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	opts := render.DefaultOptions()
	return Config{
		Renderer: Renderer{
			Engine: opts.Engine,
			Format: opts.Format,
		},
	}
}

// RenderOptions converts the renderer section to [render.Options].
func (c Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	if c.Renderer.Engine != "" {
		opts.Engine = c.Renderer.Engine
	}
	if c.Renderer.Format != "" {
		opts.Format = c.Renderer.Format
	}
	return opts
}

// Validate checks the renderer settings and output directory.
func (c Config) Validate() error {
	if err := c.RenderOptions().Validate(); err != nil {
		return err
	}
	if c.OutputDir != "" {
		if err := errs.ValidateOutputName(c.OutputDir); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the default configuration file path using the XDG standard
// (~/.config/dotbuilder/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path, or at [Path] when path is empty.
// Keys absent from the file keep their default values. A missing file yields
// [Default].
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), errs.Wrap(errs.ErrCodeInvalidFormat, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), errs.New(errs.ErrCodeInvalidFormat, "config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}
