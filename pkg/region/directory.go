package region

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	entrySeparator = ","
	fieldSeparator = "#"
)

// Region is a named deployment target.
type Region struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Directory is an ordered, read-only list of regions.
type Directory struct {
	regions []Region
}

// New builds a directory from regions. The slice is copied.
func New(regions ...Region) *Directory {
	return &Directory{regions: slices.Clone(regions)}
}

// Parse builds a directory from "NAME#URL,NAME#URL". Blank entries are
// skipped; an entry without "#" becomes a region with an empty URL. Anything
// after a second "#" is ignored. Parse never fails.
func Parse(config string) *Directory {
	entries := strings.Split(config, entrySeparator)
	regions := make([]Region, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		fields := strings.Split(entry, fieldSeparator)
		r := Region{Name: strings.TrimSpace(fields[0])}
		if len(fields) > 1 {
			r.URL = strings.TrimSpace(fields[1])
		}
		regions = append(regions, r)
	}

	return &Directory{regions: regions}
}

type yamlDocument struct {
	Regions []Region `yaml:"regions"`
}

// LoadYAML reads a directory from a YAML document with a top level
// "regions" list.
func LoadYAML(r io.Reader) (*Directory, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRegions
		}
		return nil, errors.Join(ErrParseYAML, err)
	}
	if len(doc.Regions) == 0 {
		return nil, ErrNoRegions
	}
	return New(doc.Regions...), nil
}

// Find returns the first region named name. Matching is exact and case-sensitive.
func (d *Directory) Find(name string) (Region, bool) {
	if d == nil {
		return Region{}, false
	}
	for _, r := range d.regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Regions returns a copy of all regions in configuration order.
func (d *Directory) Regions() []Region {
	if d == nil {
		return nil
	}
	return slices.Clone(d.regions)
}

// Names returns region names in configuration order.
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.regions))
	for i, r := range d.regions {
		names[i] = r.Name
	}
	return names
}

func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.regions)
}

// Validate reports configuration problems: empty names, missing or
// non-absolute http(s) URLs, and duplicate names. The directory stays usable
// either way; Validate exists so that problems show up at startup.
func (d *Directory) Validate() error {
	if d.Len() == 0 {
		return ErrNoRegions
	}

	var errs []error
	seen := make(map[string]struct{}, len(d.regions))

	for i, r := range d.regions {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d", ErrEmptyName, i))
		}
		if _, dup := seen[r.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q at entry %d is shadowed by an earlier entry", ErrDuplicateName, r.Name, i))
		}
		seen[r.Name] = struct{}{}

		if r.URL == "" {
			errs = append(errs, fmt.Errorf("%w: region %q", ErrEmptyURL, r.Name))
			continue
		}
		if u, err := url.Parse(r.URL); err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("%w: region %q has %q", ErrInvalidURL, r.Name, r.URL))
		}
	}

	return errors.Join(errs...)
}
