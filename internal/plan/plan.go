// Package plan decides, for every test of a corpus, whether it runs under
// the current selection settings.
package plan

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AndreyAkinshin/testgrep/internal/config"
	"github.com/AndreyAkinshin/testgrep/internal/corpus"
	"github.com/AndreyAkinshin/testgrep/internal/errors"
	"github.com/AndreyAkinshin/testgrep/internal/grep"
)

// Status is the outcome of selection for one test.
type Status int

const (
	// StatusRun marks a selected test.
	StatusRun Status = iota
	// StatusSkip marks a test that was not selected but is still reported.
	StatusSkip
	// StatusOmit marks a test that was not selected and is left out.
	StatusOmit
	// StatusPending marks a test declared pending. Pending tests are never
	// filtered.
	StatusPending
)

var statusNames = [...]string{"run", "skip", "omit", "pending"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText renders the status name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Item is one planned test. A burned test yields one item per repetition.
type Item struct {
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Tags         []string `json:"tags,omitempty"`
	RequiredTags []string `json:"required_tags,omitempty"`
	Status       Status   `json:"status"`
	// Repeat is the 1-based repetition of a burned test, 0 otherwise.
	Repeat int `json:"repeat,omitempty"`
}

// Manifest is the plan for one manifest file.
type Manifest struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	Items    []Item `json:"items"`
}

// Summary counts the planned items by status.
type Summary struct {
	Run     int `json:"run"`
	Skipped int `json:"skipped"`
	Omitted int `json:"omitted"`
	Pending int `json:"pending"`
}

// Plan is the selection result for a whole corpus.
type Plan struct {
	Query     grep.Query `json:"query"`
	Manifests []Manifest `json:"manifests"`
	Warnings  []string   `json:"warnings,omitempty"`
	Summary   Summary    `json:"summary"`
}

// NoSpecsWarning is recorded when filtering manifests would leave none.
const NoSpecsWarning = "grep and/or tags eliminated all specs"

// Build evaluates every test of manifests against s. When s.FilterSpecs is
// set, manifests without selected tests are dropped, unless that would
// drop all of them.
func Build(s *config.Settings, manifests []*corpus.Manifest) (*Plan, error) {
	if err := config.Validate(s); err != nil {
		return nil, err
	}

	q := grep.BuildQuery(s.Grep, s.Tags, s.PrefixAt)
	if err := q.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot build selection query")
	}
	log.Debug().Stringer("title", q.Title).Stringer("tags", q.Tags).Msg("built selection query")

	p := &Plan{Query: q}
	noFilter := q.IsEmpty() && !s.Untagged

	all := make([]Manifest, 0, len(manifests))
	for _, m := range manifests {
		all = append(all, planManifest(s, q, noFilter, m))
	}

	p.Manifests = all
	if s.FilterSpecs {
		p.Manifests = selectedManifests(all)
		if len(p.Manifests) == 0 && len(all) > 0 {
			log.Debug().Int("manifests", len(all)).Msg("no manifest selected, keeping all")
			p.Warnings = append(p.Warnings, NoSpecsWarning)
			p.Manifests = all
		}
	}

	p.Warnings = append(p.Warnings, missingTagWarnings(s, manifests)...)
	p.Summary = summarize(p.Manifests)
	return p, nil
}

func planManifest(s *config.Settings, q grep.Query, noFilter bool, m *corpus.Manifest) Manifest {
	out := Manifest{Path: m.Path, Name: m.Name, Items: []Item{}}
	anyRun := false
	anyUnrequired := false

	m.Walk(func(e corpus.Entry) {
		if len(e.RequiredTags) == 0 {
			anyUnrequired = true
		}

		if e.Pending {
			out.Items = append(out.Items, newItem(e, StatusPending))
			return
		}

		if !grep.ShouldRun(q, e.Title, e.Tags, s.Untagged, e.RequiredTags) {
			status := StatusSkip
			if s.OmitFiltered {
				status = StatusOmit
			}
			log.Debug().Str("test", e.Title).Stringer("status", status).Msg("filtered test")
			out.Items = append(out.Items, newItem(e, status))
			return
		}

		anyRun = true
		out.Items = append(out.Items, burn(e, s.Burn)...)
	})

	out.Selected = anyRun || (noFilter && anyUnrequired)
	return out
}

func newItem(e corpus.Entry, status Status) Item {
	return Item{
		Title:        e.Title,
		Name:         e.Name,
		Tags:         e.Tags,
		RequiredTags: e.RequiredTags,
		Status:       status,
	}
}

// burn repeats a selected test n times, renaming each repetition
// "<name>: burning k of n".
func burn(e corpus.Entry, n int) []Item {
	if n <= 1 {
		return []Item{newItem(e, StatusRun)}
	}

	items := make([]Item, 0, n)
	prefix := strings.TrimSuffix(e.Title, e.Name)
	for k := 1; k <= n; k++ {
		item := newItem(e, StatusRun)
		item.Name = BurnName(e.Name, k, n)
		item.Title = prefix + item.Name
		item.Repeat = k
		items = append(items, item)
	}
	return items
}

// BurnName is the name of the k-th of n repetitions of a test.
func BurnName(name string, k, n int) string {
	return fmt.Sprintf("%s: burning %d of %d", name, k, n)
}

func selectedManifests(all []Manifest) []Manifest {
	var kept []Manifest
	for _, m := range all {
		if m.Selected {
			kept = append(kept, m)
		} else {
			log.Debug().Str("manifest", m.Path).Msg("dropping manifest without selected tests")
		}
	}
	return kept
}

// missingTagWarnings reports tags named in the tag expression that no test
// carries.
func missingTagWarnings(s *config.Settings, manifests []*corpus.Manifest) []string {
	mentioned := grep.MentionedTags(s.Tags)
	if len(mentioned) == 0 {
		return nil
	}

	found := make(map[string]struct{})
	for _, tag := range corpus.FoundTags(manifests) {
		found[tag] = struct{}{}
	}

	var warnings []string
	for _, tag := range mentioned {
		if s.PrefixAt && !strings.HasPrefix(tag, grep.TagPrefix) {
			tag = grep.TagPrefix + tag
		}
		if _, ok := found[tag]; !ok {
			warnings = append(warnings, fmt.Sprintf("could not find the tag %q in any of the specs", tag))
		}
	}
	return warnings
}

func summarize(manifests []Manifest) Summary {
	var sum Summary
	for _, m := range manifests {
		for _, item := range m.Items {
			switch item.Status {
			case StatusRun:
				sum.Run++
			case StatusSkip:
				sum.Skipped++
			case StatusOmit:
				sum.Omitted++
			case StatusPending:
				sum.Pending++
			}
		}
	}
	return sum
}

// Titles returns the titles of the items that run, in plan order.
func (p *Plan) Titles() []string {
	var titles []string
	for _, m := range p.Manifests {
		for _, item := range m.Items {
			if item.Status == StatusRun {
				titles = append(titles, item.Title)
			}
		}
	}
	return titles
}
