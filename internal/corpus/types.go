// Package corpus loads test manifests: declarative files listing test groups
// and test cases with their tags.
package corpus

// Manifest is one manifest file. File-level tags apply to every test in it.
type Manifest struct {
	Path         string   `mapstructure:"-"`
	Name         string   `mapstructure:"name"`
	Tags         []string `mapstructure:"tags"`
	RequiredTags []string `mapstructure:"required_tags"`
	Groups       []Group  `mapstructure:"groups"`
	Tests        []Case   `mapstructure:"tests"`
}

// Group is a named set of tests and nested groups sharing tags.
type Group struct {
	Name         string   `mapstructure:"name"`
	Tags         []string `mapstructure:"tags"`
	RequiredTags []string `mapstructure:"required_tags"`
	Groups       []Group  `mapstructure:"groups"`
	Tests        []Case   `mapstructure:"tests"`
}

// Case is a single declared test.
type Case struct {
	Name         string   `mapstructure:"name"`
	Tags         []string `mapstructure:"tags"`
	RequiredTags []string `mapstructure:"required_tags"`
	Pending      bool     `mapstructure:"pending"`
}

// Entry is a test as seen by the selector: its full title and the tags it
// accumulated from its manifest and enclosing groups.
type Entry struct {
	Manifest     string   `json:"manifest"`
	Title        string   `json:"title"`
	Name         string   `json:"name"`
	Tags         []string `json:"tags"`
	RequiredTags []string `json:"required_tags"`
	Pending      bool     `json:"pending,omitempty"`
}
