package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Lfu001/cresca/internal/core/doctor"
	"github.com/Lfu001/cresca/internal/core/styles"
	"github.com/Lfu001/cresca/internal/cresca"
	"github.com/Lfu001/cresca/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	app    *cresca.App
	format string
}

func NewDoctorCmd(flags *Flags, app *cresca.App) *DoctorCmd {
	return &DoctorCmd{flags: flags, app: app}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Check that cresca can work here",
		UsageText:   "cresca doctor [options]",
		Description: "Checks the configuration, the git binary, the repository and its remote, and the current review session.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json, yaml)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	format, err := iojson.ParseFormat(cmd.format, iojson.FormatJSON, iojson.FormatYAML)
	if err != nil {
		return err
	}

	results := cmd.app.Doctor.RunChecks(ctx, cmd.flags.ConfigPath)

	if format != iojson.FormatText {
		return cmd.outputStructured(c, format, results)
	}

	_, _, failed := doctor.Summary(results)
	writeDoctorText(os.Stderr, results)

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

type summaryOutput struct {
	Passed int `json:"passed" yaml:"passed"`
	Warned int `json:"warned" yaml:"warned"`
	Failed int `json:"failed" yaml:"failed"`
}

func (cmd *DoctorCmd) outputStructured(c *cli.Command, format iojson.Format, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy" yaml:"healthy"`
		Summary summaryOutput   `json:"summary" yaml:"summary"`
		Checks  []doctor.Result `json:"checks" yaml:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryOutput{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.WriteFormat(c.Root().Writer, os.Stderr, format, out)
}

func writeDoctorText(w io.Writer, results []doctor.Result) {
	divider := styles.DividerStyle.Render(strings.Repeat("─", 40))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.TextPrimaryBoldStyle.Render("Cresca Doctor"))
	_, _ = fmt.Fprintln(w, divider)
	_, _ = fmt.Fprintln(w)

	for _, result := range results {
		_, _ = fmt.Fprintln(w, styles.TextForegroundBoldStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + styles.TextMutedStyle.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.TextSuccessStyle.Render(styles.IconCheck)
			case doctor.StatusWarn:
				icon = styles.TextWarningStyle.Render(styles.IconWarning)
			case doctor.StatusFail:
				icon = styles.TextErrorStyle.Render(styles.IconCross)
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}

		_, _ = fmt.Fprintln(w)
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
		styles.TextSuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
		styles.TextWarningStyle.Render(fmt.Sprintf("%d warnings", warned)),
		styles.TextErrorStyle.Render(fmt.Sprintf("%d failed", failed)),
	)
}
