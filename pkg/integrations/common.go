package integrations

import (
	"net/http"
	"strings"

	errs "github.com/matzehuels/metacpan/pkg/errors"
)

// maxErrorBody bounds how much of an error response body is kept for diagnostics.
const maxErrorBody = 512

var (
	// ErrNotFound is returned when a distribution or module doesn't exist in the registry.
	ErrNotFound = errs.Sentinel(errs.ErrCodeNotFound)

	// ErrHTTP is returned for transport failures, non-404 error statuses,
	// unreadable bodies and undecodable JSON.
	ErrHTTP = errs.Sentinel(errs.ErrCodeHTTP)

	// ErrURL is returned when a request URL cannot be built from the input name.
	ErrURL = errs.Sentinel(errs.ErrCodeURL)
)

// NewHTTPClient creates the default transport for registry requests.
// No timeout is set; callers bound requests through the context or by
// passing their own *http.Client.
func NewHTTPClient() *http.Client {
	return &http.Client{}
}

// NormalizeDistName converts a module-style name ("JSON::PP") to the
// registry's distribution form ("JSON-PP"). Surrounding spaces are trimmed.
func NormalizeDistName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "::", "-")
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical HTTPS form.
// Handles git@, git://, and git+ prefixes, and removes .git suffixes.
// Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
