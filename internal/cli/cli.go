// Package cli implements the dotbuilder command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotbuilder/pkg/buildinfo"
	"github.com/matzehuels/dotbuilder/pkg/cache"
	"github.com/matzehuels/dotbuilder/pkg/config"
	"github.com/matzehuels/dotbuilder/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dotbuilder"

	// renderCacheTTL bounds how long an in-process render is reused.
	renderCacheTTL = 7 * 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs.
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Dotbuilder builds Graphviz DOT descriptions",
		Long:         `Dotbuilder turns declarative graph files into Graphviz DOT descriptions and optionally renders them to images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dotbuilder/config.toml)")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and attaches the logger to the command context.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", c.configPathOrDefault())
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func (c *CLI) configPathOrDefault() string {
	if c.configPath != "" {
		return c.configPath
	}
	path, err := config.Path()
	if err != nil {
		return ""
	}
	return path
}

// =============================================================================
// Renderer Factory
// =============================================================================

// renderFlags holds the renderer flags shared by build and render.
type renderFlags struct {
	engine    string
	format    string
	inProcess bool
	open      bool
	noCache   bool
}

// register adds the renderer flags to cmd. Defaults come from the config file,
// so the flag defaults are left empty.
func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.engine, "engine", "", "layout engine: sfdp (default), dot, neato, fdp, circo, twopi, osage, patchwork")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "image format: png (default), svg, pdf, jpg, gif, ps")
	cmd.Flags().BoolVar(&f.inProcess, "in-process", false, "render with the embedded Graphviz instead of the engine binary")
	cmd.Flags().BoolVar(&f.open, "open", false, "open the rendered image")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "do not reuse or store in-process renders")
}

// resolve merges the flags over the config file values.
func (f *renderFlags) resolve(cmd *cobra.Command, cfg config.Config) (render.Options, bool, bool, error) {
	opts := cfg.RenderOptions()
	if f.engine != "" {
		opts.Engine = f.engine
	}
	if f.format != "" {
		opts.Format = f.format
	}
	if err := opts.Validate(); err != nil {
		return opts, false, false, err
	}

	inProcess := cfg.Renderer.InProcess
	if cmd.Flags().Changed("in-process") {
		inProcess = f.inProcess
	}
	open := cfg.Open
	if cmd.Flags().Changed("open") {
		open = f.open
	}
	return opts, inProcess, open, nil
}

// newRenderer picks the in-process or subprocess renderer. In-process renders
// go through the image cache unless noCache is set.
func (c *CLI) newRenderer(opts render.Options, inProcess, noCache bool) render.Renderer {
	if !inProcess {
		return render.NewExecRenderer(opts)
	}
	return render.NewGraphvizRenderer(opts).WithCache(c.newCache(noCache), renderCacheTTL, c.Logger)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("render cache disabled", "dir", dir, "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dotbuilder/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
