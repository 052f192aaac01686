package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/testgrep/internal/corpus"
	"github.com/AndreyAkinshin/testgrep/internal/plan"
)

func (a *app) selectCmd() *cobra.Command {
	var (
		f      selectionFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Print which tests of the manifests run",
		Long: `Load the manifests, apply the title and tag expressions and print the plan.

Settings are read from the settings file, then TESTGREP_* environment
variables (GREP, GREP_TAGS and BURN are accepted too), then flags.`,
		Example: `  testgrep select --tags @smoke
  testgrep select --grep "checkout; -slow" --burn 5 --format titles
  GREP_TAGS="@cart --@flaky" testgrep select --filter-specs --format json`,
		Args: maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSelect(cmd, &f, format)
		},
	}
	addSelectionFlags(cmd, &f)
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or titles")
	return cmd
}

func (a *app) runSelect(cmd *cobra.Command, f *selectionFlags, format string) error {
	switch format {
	case "text", "json", "titles":
	default:
		return usageError("invalid --format %q (want text, json or titles)", format)
	}

	s, fsys, err := a.loadSettings(cmd, f)
	if err != nil {
		return err
	}

	manifests, err := corpus.NewLoader(fsys).LoadAll(s.Specs)
	if err != nil {
		return err
	}
	if len(manifests) == 0 {
		a.out.Warning("no manifests match %q", s.Specs)
	}

	p, err := plan.Build(s, manifests)
	if err != nil {
		return err
	}
	for _, w := range p.Warnings {
		a.out.Warning("%s", w)
	}

	switch format {
	case "json":
		return a.out.JSON(p)
	case "titles":
		a.out.Lines(p.Titles())
	default:
		a.printPlan(p)
	}
	return nil
}

func (a *app) printPlan(p *plan.Plan) {
	for i, m := range p.Manifests {
		if i > 0 {
			a.out.Println("")
		}
		a.out.Println("%s", m.Path)
		for _, item := range m.Items {
			if item.Status == plan.StatusOmit {
				continue
			}
			a.out.Test(item.Status.String(), item.Title, item.Tags)
		}
	}

	if !a.out.Quiet() {
		a.out.Println("")
	}
	a.out.SummaryItem("Run", fmt.Sprintf("%d", p.Summary.Run))
	a.out.SummaryItem("Skipped", fmt.Sprintf("%d", p.Summary.Skipped))
	if p.Summary.Omitted > 0 {
		a.out.SummaryItem("Omitted", fmt.Sprintf("%d", p.Summary.Omitted))
	}
	if p.Summary.Pending > 0 {
		a.out.SummaryItem("Pending", fmt.Sprintf("%d", p.Summary.Pending))
	}
}

// maxArgs is cobra.MaximumNArgs reporting a usage error.
func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return usageError("%s: %v", cmd.CommandPath(), err)
		}
		return nil
	}
}
