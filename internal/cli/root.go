package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sparkentic/sparkentic/internal/branding"
	"github.com/sparkentic/sparkentic/internal/config"
	"github.com/sparkentic/sparkentic/internal/logging"
	"github.com/sparkentic/sparkentic/internal/output"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var (
	noBanner  bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up a project for building production AI agents with Pydantic AI.

It installs the agent workflow (Architect → Builder → Tester → Deployer) into
.sparkentic-core/, the matching slash commands into .claude/, the conventional
docs/, src/, src/tools/ and tests/ directories, and a default pyproject.toml.

Also available as "` + branding.Alias() + `".`,
	Example: `  cd my-project
  ` + branding.CLIName() + ` init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return output.NewUserError(err.Error())
		}
		if !showBanner(cmd) {
			return nil
		}
		return output.RenderBanner(cmd.OutOrStdout(), newPalette(cmd), output.Banner{
			Tagline: branding.Tagline(),
			Version: buildVersion,
			Year:    time.Now().Year(),
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "Color output: auto, always, never")
	flags.String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Diagnostic log format: text, json")
	flags.BoolVar(&noBanner, "no-banner", false, "Do not print the banner")

	_ = viper.BindPFlag(config.KeyColor, flags.Lookup("color"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return fang.Execute(ctx, rootCmd, fang.WithVersion(version))
}

// showBanner skips the banner for machine-readable and settings commands.
func showBanner(cmd *cobra.Command) bool {
	if noBanner {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "config", "completion", cobra.ShellCompRequestCmd:
			return false
		}
	}
	return true
}

func newPalette(cmd *cobra.Command) output.Palette {
	return output.NewPalette(output.ResolveColorMode(config.Get(config.KeyColor), output.IsTTY(cmd.OutOrStdout())))
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), newPalette(cmd)).WithStderr(cmd.ErrOrStderr())
}

func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	level, err := logging.ParseLevel(config.Get(config.KeyLogLevel))
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, output.NewUserError(fmt.Sprintf("unknown log format %q (want text or json)", logFormat))
	}
	return logging.New(level, logFormat, cmd.ErrOrStderr()), nil
}
