package cli

import (
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/testgrep/internal/grep"
)

// parsedQuery is the output of the parse command.
type parsedQuery struct {
	Query         grep.Query `json:"query"`
	Canonical     canonical  `json:"canonical"`
	MentionedTags []string   `json:"mentioned_tags"`
}

type canonical struct {
	Grep string `json:"grep"`
	Tags string `json:"tags"`
}

func (a *app) parseCmd() *cobra.Command {
	var (
		title    string
		tags     string
		prefixAt bool
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the parsed form of title and tag expressions",
		Example: `  testgrep parse --tags "@smoke+@fast,@slow --@flaky"
  testgrep parse --grep "hello; -world" --tags smoke --prefix-at`,
		Args: maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := grep.BuildQuery(title, tags, prefixAt)
			if err := q.Validate(); err != nil {
				return err
			}
			mentioned := grep.MentionedTags(tags)
			if mentioned == nil {
				mentioned = []string{}
			}
			return a.out.JSON(parsedQuery{
				Query:         q,
				Canonical:     canonical{Grep: q.Title.String(), Tags: q.Tags.String()},
				MentionedTags: mentioned,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&title, "grep", "", "Title expression")
	flags.StringVar(&tags, "tags", "", "Tag expression")
	flags.BoolVar(&prefixAt, "prefix-at", false, `Prefix tag names with "@" when missing`)
	return cmd
}
