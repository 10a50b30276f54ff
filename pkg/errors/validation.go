package errors

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameLength bounds distribution and module names sent to the registry.
const maxNameLength = 256

// ValidateName checks that name can be used as a single URL path segment
// under the registry root. Failures carry [ErrCodeURL].
//
// Rules:
//   - No empty names
//   - Maximum length of 256 characters
//   - No control characters or whitespace
//   - No '/', '\', '?', '#' or '%' (they would change the request path)
//   - Not "." or ".."
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeURL, "name cannot be empty")
	}

	if utf8.RuneCountInString(name) > maxNameLength {
		return New(ErrCodeURL, "name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeURL, "name %q contains whitespace or control characters", name)
		}
	}

	if i := strings.IndexAny(name, `/\?#%`); i >= 0 {
		return New(ErrCodeURL, "name %q contains invalid character %q", name, name[i])
	}

	if name == "." || name == ".." {
		return New(ErrCodeURL, "name %q is not a valid path segment", name)
	}

	return nil
}

// ValidateBaseURL checks that rawURL is an absolute http(s) URL usable as
// the registry API root.
func ValidateBaseURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, New(ErrCodeURL, "base URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Wrap(ErrCodeURL, err, "invalid base URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, New(ErrCodeURL, "base URL must use http or https scheme: %q", rawURL)
	}
	if u.Host == "" {
		return nil, New(ErrCodeURL, "base URL has no host: %q", rawURL)
	}
	return u, nil
}
