package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Lfu001/cresca/internal/commands"
	"github.com/Lfu001/cresca/internal/core/config"
	"github.com/Lfu001/cresca/internal/core/git"
	"github.com/Lfu001/cresca/internal/core/logging"
	"github.com/Lfu001/cresca/internal/core/styles"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/internal/printer"
	"github.com/Lfu001/cresca/pkg/executil"
	"github.com/Lfu001/cresca/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		crescaApp = &cresca.App{}
		p         = printer.New(os.Stdout, os.Stderr)
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "cresca",
		Usage:     "Review a branch incrementally, one approval at a time",
		UsageText: "cresca [global options] command [command options]",
		Description: `cresca lays the changes of a branch out as unstaged changes on a dedicated
review branch. Stage what you have reviewed and approve it; run review again
later and only the changes you have not approved come back.

Run 'cresca review main feature' to start, 'cresca status' to see what is left
and 'cresca approve' to record progress.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("CRESCA_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "append JSON logs to this file instead of stderr",
				Sources:     cli.EnvVars("CRESCA_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CRESCA_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "git-path",
				Usage:       "git executable to run (overrides git_path)",
				Sources:     cli.EnvVars("CRESCA_GIT_PATH"),
				Destination: &flags.GitPath,
			},
			&cli.StringFlag{
				Name:        "remote",
				Usage:       "remote to pull from (overrides remote)",
				Sources:     cli.EnvVars("CRESCA_REMOTE"),
				Destination: &flags.Remote,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "print every git command and its output",
				Sources:     cli.EnvVars("CRESCA_VERBOSE"),
				Destination: &flags.Verbose,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			logging.Install(logger)
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			flags.Apply(cfg)
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid flags: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			gitExec := git.NewExecutor(cfg.GitPath, &executil.RealExecutor{})
			if flags.Verbose {
				gitExec = gitExec.WithEcho(p)
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*crescaApp = *cresca.NewApp(cfg, gitExec)

			log.Debug().Str("config", flags.ConfigPath).Str("git", cfg.GitPath).Msg("cresca ready")

			return printer.NewContext(ctx, p), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewReviewCmd(flags, crescaApp).Register(app)
	app = commands.NewApproveCmd(flags, crescaApp).Register(app)
	app = commands.NewStatusCmd(flags, crescaApp).Register(app)
	app = commands.NewLsCmd(flags, crescaApp).Register(app)
	app = commands.NewDoctorCmd(flags, crescaApp).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		commands.RenderError(p, err)
		exitCode = 1
	}

	os.Exit(exitCode)
}
