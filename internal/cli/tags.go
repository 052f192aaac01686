package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/testgrep/internal/corpus"
	"github.com/AndreyAkinshin/testgrep/internal/grep"
)

func (a *app) tagsCmd() *cobra.Command {
	var f selectionFlags

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags of an expression and of the manifests",
		Long: `List the tags named in the tag expression. When manifests are found, also
list every tag they declare and warn about named tags no test carries.`,
		Args: maxArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTags(cmd, &f)
		},
	}

	cmd.Flags().StringVar(&f.tags, "tags", "", "Tag expression")
	cmd.Flags().BoolVar(&f.prefixAt, "prefix-at", false, `Prefix tag names with "@" when missing`)
	addCorpusFlags(cmd, &f)
	return cmd
}

func (a *app) runTags(cmd *cobra.Command, f *selectionFlags) error {
	s, fsys, err := a.loadSettings(cmd, f)
	if err != nil {
		return err
	}

	mentioned := grep.MentionedTags(s.Tags)
	if s.PrefixAt {
		for i, tag := range mentioned {
			if !strings.HasPrefix(tag, grep.TagPrefix) {
				mentioned[i] = grep.TagPrefix + tag
			}
		}
	}

	manifests, err := corpus.NewLoader(fsys).LoadAll(s.Specs)
	if err != nil {
		return err
	}

	if len(manifests) == 0 {
		a.out.Lines(mentioned)
		return nil
	}

	found := corpus.FoundTags(manifests)
	known := make(map[string]struct{}, len(found))
	for _, tag := range found {
		known[tag] = struct{}{}
	}

	if len(mentioned) > 0 {
		rows := make([][]string, 0, len(mentioned))
		for _, tag := range mentioned {
			status := "yes"
			if _, ok := known[tag]; !ok {
				status = "no"
				a.out.Warning("could not find the tag %q in any of the specs", tag)
			}
			rows = append(rows, []string{tag, status})
		}
		a.out.Table([]string{"Tag", "Found"}, rows)
		a.out.Println("")
	}

	a.out.Section("Tags in manifests")
	a.out.Lines(found)
	return nil
}
