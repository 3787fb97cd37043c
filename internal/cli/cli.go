// Package cli implements the framekit command-line interface.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framekit/internal/config"
	"github.com/matzehuels/framekit/pkg/buildinfo"
	"github.com/matzehuels/framekit/pkg/cache"
	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/export"
	"github.com/matzehuels/framekit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "framekit"

	// redisPrefix scopes keys when several tools share a Redis database.
	redisPrefix = appName + ":"

	// envRedisURL names the environment variable that sets --redis.
	envRedisURL = "FRAMEKIT_REDIS_URL"
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
	Config *config.Config

	configErr error // reported when a command runs
}

// New creates a new CLI instance logging to w. Flag defaults are read
// from the environment.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	c.Config, c.configErr = config.Load()
	if c.configErr != nil {
		c.Config = config.Default()
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Framekit measures and lays out view trees",
		Long: `Framekit sizes and positions trees of views described in TOML scene files.
Every layout runs twice with the same procedure: once to measure the size a
scene needs for a width, and once to commit the frames.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.configErr != nil {
				return c.configErr
			}
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.measureCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Error Reporting
// =============================================================================

// Report prints a command error to w and returns the process exit code:
// 130 after cancellation, 1 otherwise. Coded errors show their message
// with the code on a second line.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	p := newPrinter(w)
	code := errors.GetCode(err)
	if code == "" {
		p.error("%v", err)
		return 1
	}
	p.error("%s", errors.UserMessage(err))
	p.detail("%s", code)
	return 1
}

// =============================================================================
// Shared Flags
// =============================================================================

// sceneFlags are the flags shared by commands that lay out a scene.
type sceneFlags struct {
	width    float64
	height   float64
	noCache  bool
	refresh  bool
	redisURL string
	ttl      time.Duration
}

func (f *sceneFlags) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().Float64VarP(&f.width, "width", "w", cfg.Width, "hint width in cells")
	cmd.Flags().Float64Var(&f.height, "height", 0, "hint height in cells (0 = unbounded)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute and overwrite cached results")
	cmd.Flags().StringVar(&f.redisURL, "redis", cfg.RedisURL, "share results through Redis (redis://host:port/db, default $"+envRedisURL+")")
	cmd.Flags().DurationVar(&f.ttl, "ttl", cfg.CacheTTL, "how long cached results stay valid")
}

func (f *sceneFlags) options(path string) pipeline.Options {
	return pipeline.Options{
		ScenePath: path,
		Width:     f.width,
		Height:    f.height,
		Refresh:   f.refresh,
		TTL:       f.ttl,
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f *sceneFlags) (*pipeline.Runner, error) {
	logger := loggerFromContext(ctx)
	if f.redisURL != "" && !f.noCache {
		rc, err := cache.NewRedisCache(ctx, f.redisURL)
		if err != nil {
			return nil, err
		}
		logger.Debug("using redis cache")
		return pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, redisPrefix), logger), nil
	}
	return pipeline.NewRunner(newCache(f.noCache, logger), nil, logger), nil
}

func newCache(noCache bool, logger *log.Logger) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/framekit/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) ([]string, error) {
	if s == "" {
		return []string{export.FormatSVG}, nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if err := export.ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// extension returns the file extension for a format.
func extension(format string) string {
	if format == export.FormatText {
		return "txt"
	}
	return format
}
