package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hulla/docugen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Cache and Runs are nil unless a cache database is configured.
	Cache docugen.CacheService
	Runs  docugen.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `short:"c" help:"Load configuration from a JSON, YAML or TOML file"`
	Cache   string          `type:"path" env:"DOCUGEN_CACHE" help:"SQLite database for the parse cache and run history"`
	Verbose bool            `short:"v" help:"Log debug output"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate documentation pages (default)"`
	Runs     RunsCmd     `cmd:"" help:"List recorded generation runs"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	OutDir      string        `name:"outDir" short:"o" default:"./docs" help:"Output directory" validate:"required"`
	Includes    []string      `short:"i" default:"." help:"Directories to scan" validate:"min=1,dive,required"`
	Excludes    []string      `short:"e" default:"./dist,./node_modules" help:"Paths or glob patterns to skip"`
	Adapter     string        `short:"a" default:"starlight" help:"Site adapter (starlight, none)" validate:"oneof=starlight none"`
	Format      string        `short:"f" default:".md" help:"Output format (.md, .html)" validate:"oneof=.md .html"`
	Files       []string      `short:"F" default:".js,.jsx,.ts,.tsx" help:"File extensions to scan" validate:"min=1,dive,startswith=."`
	Meta        bool          `short:"m" default:"true" negatable:"" help:"Add a generated-from description to the frontmatter"`
	Index       bool          `help:"Write an index page linking every page"`
	Concurrency int           `default:"8" help:"Files scanned concurrently" validate:"min=1"`
	Timeout     time.Duration `default:"10s" help:"Per-file read timeout" validate:"gt=0"`
	Watch       bool          `short:"w" help:"Regenerate when sources change"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	OutDir string `name:"outDir" short:"o" help:"Only show runs for this output directory"`
	Limit  int    `short:"n" default:"10" help:"Maximum number of runs to show" validate:"min=0"`
}
