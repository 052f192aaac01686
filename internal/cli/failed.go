package cli

import (
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
	"github.com/AndreyAkinshin/testgrep/internal/testparser"
)

func (a *app) failedCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "failed [file]",
		Short: "Print a title expression selecting the tests that failed",
		Long: `Read go test output from a file or stdin and print the names of the failed
tests joined by ";", ready to be passed back as a title expression.
Plain and -json output are detected automatically.`,
		Example: `  go test -json ./... | testgrep failed
  testgrep select --grep "$(testgrep failed test.log)"`,
		Args: maxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFailed(args, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", "Input format: auto, go or json")
	return cmd
}

func (a *app) runFailed(args []string, format string) error {
	registry := testparser.NewRegistry()

	var parser testparser.Parser
	if format != "auto" {
		parser = registry.GetParser(format)
		if parser == nil {
			return usageError("invalid --format %q (want auto, %s)", format, strings.Join(registry.Formats(), ", "))
		}
	}

	data, err := a.readInput(args)
	if err != nil {
		return err
	}
	text := string(data)
	if parser == nil {
		parser = registry.Detect(text)
	}

	counts := parser.Parse(text)
	names := testparser.FailedNames(counts)
	if len(names) == 0 {
		a.out.Info("no failed tests found")
		return nil
	}

	for _, ft := range counts.FailedTests {
		if ft.Reason != "" {
			a.out.Hint("%s: %s", ft.Name, ft.Reason)
		}
	}
	a.out.Println("%s", testparser.TitleExpression(names))
	return nil
}

func (a *app) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, errors.Environmentf("failed to read stdin: %v", err)
		}
		return data, nil
	}

	data, err := afero.ReadFile(a.files, args[0])
	if err != nil {
		return nil, errors.Environmentf("failed to read %s: %v", args[0], err)
	}
	return data, nil
}
