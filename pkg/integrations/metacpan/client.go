package metacpan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"

	errs "github.com/matzehuels/metacpan/pkg/errors"
	"github.com/matzehuels/metacpan/pkg/integrations"
)

// DefaultBaseURL is the root of the public MetaCPAN API.
const DefaultBaseURL = "https://fastapi.metacpan.org/v1/"

// Client provides access to the MetaCPAN registry API.
// Each lookup is a single GET request; nothing is cached or retried.
//
// All methods are safe for concurrent use to the extent the configured
// *http.Client is.
type Client struct {
	*integrations.Client
	baseURL *url.URL
}

type options struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a [Client].
type Option func(*options)

// WithBaseURL points the client at a different API root, such as a mirror
// or an httptest server. A missing trailing slash is added.
func WithBaseURL(raw string) Option {
	return func(o *options) { o.baseURL = raw }
}

// WithHTTPClient sets the transport used for requests. Timeouts, proxies
// and TLS settings are taken from it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger that receives the per-request info line.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewClient creates a MetaCPAN client.
//
// It fails only when the base URL is not an absolute http(s) URL, which
// cannot happen with [DefaultBaseURL]. The error carries code INVALID_URL.
func NewClient(opts ...Option) (*Client, error) {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	raw := o.baseURL
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := errs.ValidateBaseURL(raw)
	if err != nil {
		return nil, err
	}

	return &Client{
		Client:  integrations.NewClient(o.httpClient, o.logger, nil),
		baseURL: base,
	}, nil
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// GetDistributionInfo retrieves release metadata for a distribution.
//
// Module-style names are accepted: "JSON::PP" is looked up as "JSON-PP".
// Note this maps a module name onto a distribution of the same name; use
// [Client.ResolveDistribution] when the owning distribution differs
// (e.g., "Scalar::Util" lives in "Scalar-List-Utils").
//
// Returns:
//   - DistributionInfo populated with metadata on success
//   - [integrations.ErrNotFound] if the registry has no such distribution
//   - [integrations.ErrHTTP] for transport failures, error statuses and
//     responses that do not decode into a release
//   - [integrations.ErrURL] if name cannot form a request path
//
// The returned DistributionInfo pointer is never nil if err is nil.
func (c *Client) GetDistributionInfo(ctx context.Context, name string) (*DistributionInfo, error) {
	u, err := c.endpoint("release", integrations.NormalizeDistName(name))
	if err != nil {
		return nil, err
	}

	body, err := c.GetBytes(ctx, u)
	if err != nil {
		return nil, err
	}

	info, err := decodeRelease(body)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeHTTP, err, "decode release from %s", u)
	}
	return info, nil
}

// ResolveDistribution returns the name of the distribution that ships
// module, e.g. "Scalar::Util" resolves to "Scalar-List-Utils".
//
// Errors are classified as for [Client.GetDistributionInfo]. A response
// without a distribution name is an [integrations.ErrHTTP] error.
func (c *Client) ResolveDistribution(ctx context.Context, module string) (string, error) {
	u, err := c.endpoint("module", strings.TrimSpace(module))
	if err != nil {
		return "", err
	}

	var data moduleResponse
	if err := c.Get(ctx, u, &data); err != nil {
		return "", err
	}
	if data.Distribution == "" {
		return "", errs.New(errs.ErrCodeHTTP, "response from %s has no distribution", u)
	}
	return data.Distribution, nil
}

func (c *Client) endpoint(kind, name string) (*url.URL, error) {
	if err := errs.ValidateName(name); err != nil {
		return nil, err
	}
	u, err := c.baseURL.Parse(kind + "/" + name)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeURL, err, "build %s URL for %q", kind, name)
	}
	return u, nil
}

// decodeRelease accepts the flat release document and the older shape
// that nests the same fields under "metadata".
func decodeRelease(body []byte) (*DistributionInfo, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("response is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, errors.New("response is not a JSON object")
	}

	doc := body
	nested := false
	if !root.Get("distribution").Exists() {
		if md := root.Get("metadata"); md.IsObject() {
			doc = []byte(md.Raw)
			nested = true
		}
	}

	var data releaseResponse
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, err
	}

	// In the flat document "name" is the release ("Moose-2.2207"), so it
	// only stands in for the distribution inside "metadata".
	name := data.Distribution
	if name == "" && nested {
		name = data.Name
	}
	if name == "" {
		return nil, errors.New("release has no distribution name")
	}

	info := &DistributionInfo{
		Name:        name,
		Description: data.Abstract,
		Version:     string(data.Version),
		License:     []string(data.License),
		DownloadURL: data.DownloadURL,
	}
	if data.Resources != nil {
		info.Resources.Homepage = data.Resources.Homepage
		if r := data.Resources.Repository; r != nil {
			info.Resources.Repository = &Repository{Type: r.Type, Web: r.Web, URL: r.URL}
		}
	}
	if data.Dependency != nil {
		info.Dependencies = make([]Dependency, 0, len(data.Dependency))
		for _, d := range data.Dependency {
			info.Dependencies = append(info.Dependencies, Dependency{
				Module:       d.Module,
				Phase:        d.Phase,
				Relationship: d.Relationship,
				Version:      string(d.Version),
			})
		}
	}
	return info, nil
}

type releaseResponse struct {
	Distribution string              `json:"distribution"`
	Name         string              `json:"name"`
	Abstract     string              `json:"abstract"`
	Version      flexString          `json:"version"`
	License      stringList          `json:"license"`
	DownloadURL  string              `json:"download_url"`
	Dependency   []dependencyPayload `json:"dependency"`
	Resources    *resourcesPayload   `json:"resources"`
}

type dependencyPayload struct {
	Module       string     `json:"module"`
	Phase        string     `json:"phase"`
	Relationship string     `json:"relationship"`
	Version      flexString `json:"version"`
}

type resourcesPayload struct {
	Homepage   string             `json:"homepage"`
	Repository *repositoryPayload `json:"repository"`
}

type repositoryPayload struct {
	Type string `json:"type"`
	Web  string `json:"web"`
	URL  string `json:"url"`
}

type moduleResponse struct {
	Distribution string `json:"distribution"`
}
