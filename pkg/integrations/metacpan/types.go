package metacpan

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/metacpan/pkg/integrations"
)

// DistributionInfo holds metadata for one release of a Perl distribution.
//
// Only Name is guaranteed to be set. Every other field is empty or nil when
// the registry omits it or sends null.
// This struct is safe for concurrent reads after construction.
type DistributionInfo struct {
	Name         string       // Distribution name (e.g., "Moose", never empty in valid info)
	Description  string       // One-line abstract (may be empty)
	Version      string       // Release version as published (e.g., "2.2207", "0.010"; may be empty)
	License      []string     // License identifiers (e.g., ["perl_5"]; nil if absent)
	DownloadURL  string       // Tarball location (may be empty)
	Dependencies []Dependency // Declared prerequisites in registry order (nil if absent)
	Resources    Resources    // Homepage and repository links
}

// Dependency is one prerequisite declared by a release.
type Dependency struct {
	Module       string // Required module (e.g., "Class::Load")
	Phase        string // "runtime", "test", "build", "configure" or "develop"
	Relationship string // "requires", "recommends" or "suggests"
	Version      string // Minimum version or range (e.g., "0.09", "0")
}

// Resources holds the links a release advertises.
type Resources struct {
	Homepage   string      // Project homepage (may be empty)
	Repository *Repository // Source repository (nil if absent)
}

// Repository describes where a distribution's source lives.
type Repository struct {
	Type string // VCS type, e.g. "git" (may be empty)
	Web  string // Browsable URL (may be empty)
	URL  string // Clone URL (may be empty)
}

// DependenciesFor returns the dependencies matching phase and relationship,
// in registry order. An empty argument matches any value.
//
//	runtime := info.DependenciesFor("runtime", "requires")
func (d *DistributionInfo) DependenciesFor(phase, relationship string) []Dependency {
	var out []Dependency
	for _, dep := range d.Dependencies {
		if phase != "" && dep.Phase != phase {
			continue
		}
		if relationship != "" && dep.Relationship != relationship {
			continue
		}
		out = append(out, dep)
	}
	return out
}

// RepoURL returns the repository's browsable URL, falling back to its clone
// URL in canonical HTTPS form. Returns "" when no repository is known.
func (d *DistributionInfo) RepoURL() string {
	repo := d.Resources.Repository
	if repo == nil {
		return ""
	}
	if repo.Web != "" {
		return repo.Web
	}
	return integrations.NormalizeRepoURL(repo.URL)
}

// flexString decodes any JSON value into its textual form. Strings are
// unquoted; numbers keep their literal text so "0.010" is not rewritten to
// "0.01"; other values become their compact JSON text.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*s = ""
		return nil
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err == nil {
			*s = flexString(n.String())
			return nil
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return err
		}
		*s = flexString(buf.String())
		return nil
	}
}

// stringList decodes a JSON array of strings, or a single string as a
// one-element list. Older release metadata spells license as "perl".
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*l = stringList{v}
		return nil
	default:
		var v []string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*l = v
		return nil
	}
}
