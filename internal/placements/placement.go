package placements

import (
	"errors"
	"fmt"
	"os"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/patrickwarner/openadsense/internal/adsense"
)

// Placement is a named ad unit configured in the catalog file. Pages refer to
// placements by name instead of repeating slot ids in templates.
type Placement struct {
	Name        string `yaml:"name" json:"name"`
	PublisherID string `yaml:"publisher_id,omitempty" json:"publisher_id,omitempty"`
	SlotID      string `yaml:"slot_id" json:"slot_id"`
	Layout      string `yaml:"layout,omitempty" json:"layout,omitempty"`
	Comment     string `yaml:"comment,omitempty" json:"comment,omitempty"`
	// CustomHTML is sanitised on load and used when Layout is "custom".
	CustomHTML string `yaml:"custom_html,omitempty" json:"custom_html,omitempty"`
}

// Unit converts the placement into a renderable unit description.
func (p Placement) Unit() adsense.Unit {
	u := adsense.Unit{
		PublisherID: p.PublisherID,
		SlotID:      p.SlotID,
		Layout:      adsense.ParseLayout(p.Layout),
		Comment:     p.Comment,
	}
	if p.CustomHTML != "" {
		u.CustomLayout = templ.Raw(p.CustomHTML)
	}
	return u
}

// File is the on-disk catalog layout.
type File struct {
	// PublisherID is the default for placements that don't set their own.
	PublisherID string      `yaml:"publisher_id,omitempty"`
	Placements  []Placement `yaml:"placements"`
}

// ErrDuplicateName is returned when two placements share a name.
var ErrDuplicateName = errors.New("duplicate placement name")

// Parse decodes a catalog, applies the file-level publisher default and
// sanitises custom markup.
func Parse(data []byte) ([]Placement, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Placements))
	out := make([]Placement, 0, len(f.Placements))
	for i, p := range f.Placements {
		if p.Name == "" {
			return nil, fmt.Errorf("placement %d: name is required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.PublisherID == "" {
			p.PublisherID = f.PublisherID
		}
		if p.CustomHTML != "" {
			p.CustomHTML = SanitizeCustomHTML(p.CustomHTML)
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads and parses the catalog at path.
func LoadFile(path string) ([]Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read placements: %w", err)
	}
	return Parse(data)
}
