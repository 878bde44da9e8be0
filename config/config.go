// Package config loads the tree rendering options of kargo.
package config

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"kargotree/treeitem"
)

// Options configures how the namespace tree is drawn.
type Options struct {
	Line  bool `json:"line"`
	Icon  bool `json:"icon"`
	Label bool `json:"label"`
	// LabelTemplate replaces the plain label when Label is false.
	LabelTemplate string `json:"labelTemplate,omitempty"`
	// Operations is a text/template rendered after each label.
	Operations string `json:"operations,omitempty"`
	// FolderIcon replaces the built-in expand indicator.
	FolderIcon string `json:"folderIcon,omitempty"`

	Activable    bool              `json:"activable"`
	Checkable    bool              `json:"checkable"`
	Disabled     bool              `json:"disabled"`
	DisableCheck bool              `json:"disableCheck"`
	CheckProps   map[string]string `json:"checkProps,omitempty"`

	ClassPrefix string `json:"classPrefix"`
	Indent      int    `json:"indent"`
	Theme       Theme  `json:"theme"`
	Glyphs      Glyphs `json:"glyphs"`
}

// Theme colours are hex strings such as "#5c6370".
type Theme struct {
	Line       string `json:"line"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Active     string `json:"active"`
	Operations string `json:"operations"`
}

type Glyphs struct {
	Collapsed     string `json:"collapsed"`
	Expanded      string `json:"expanded"`
	Loading       string `json:"loading"`
	Checked       string `json:"checked"`
	Unchecked     string `json:"unchecked"`
	Indeterminate string `json:"indeterminate"`
}

func Default() Options {
	return Options{
		Line:        true,
		Icon:        true,
		Label:       true,
		Activable:   true,
		ClassPrefix: treeitem.DefaultPrefix,
		Indent:      2,
		Theme: Theme{
			Line:       "#5c6370",
			Text:       "#d0d0d0",
			Background: "#1c1c1c",
			Active:     "#3a3a3a",
			Operations: "#87afd7",
		},
		Glyphs: Glyphs{
			Collapsed:     "▸",
			Expanded:      "▾",
			Loading:       "◌",
			Checked:       "[x]",
			Unchecked:     "[ ]",
			Indeterminate: "[-]",
		},
	}
}

// Load reads YAML options from path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Options, error) {
	opts := Default()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := opts.Validate(); err != nil {
		return opts, errors.Wrapf(err, "invalid config %s", path)
	}
	return opts, nil
}

func (o Options) Validate() error {
	if o.Indent < 1 {
		return errors.Errorf("indent must be positive, got %d", o.Indent)
	}
	return nil
}

// Save writes the options as YAML.
func (o Options) Save(path string) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing config %s", path)
}

// Scope builds the shared tree scope described by the options.
func (o Options) Scope(log logr.Logger) *treeitem.Scope {
	s := treeitem.NewScope()
	s.Line = treeitem.Bool(o.Line)
	s.Icon = treeitem.Bool(o.Icon)
	s.Label = treeitem.Bool(o.Label)
	if !o.Label && o.LabelTemplate != "" {
		s.Label = treeitem.Template(o.LabelTemplate)
	}
	s.Operations = treeitem.Template(o.Operations)
	s.DisableCheck = treeitem.DisableAllChecks(o.DisableCheck)
	s.CheckProps = o.CheckProps
	s.Classes = treeitem.NewClassNames(o.ClassPrefix)
	s.Ripple = treeitem.NewRippleSet()
	s.Log = log
	if o.FolderIcon != "" {
		glyph := o.FolderIcon
		s.Global.FolderIcon = func() *treeitem.Element { return treeitem.Text(glyph) }
	}
	for _, spec := range []treeitem.RenderSpec{s.Label, s.Operations} {
		if err := spec.Err(); err != nil {
			log.Error(err, "render template rejected, feature will render nothing", "spec", spec.String())
		}
	}
	return s
}
