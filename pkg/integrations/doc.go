// Package integrations provides the shared HTTP layer for registry API clients.
//
// # Overview
//
// Registry-specific clients live in subpackages:
//
//   - [metacpan]: MetaCPAN, the registry of Perl distributions
//
// # Client Pattern
//
// Registry clients embed [Client] and add typed lookups:
//
//	client, err := metacpan.NewClient()
//	info, err := client.GetDistributionInfo(ctx, "Moose")
//
// [Client] handles:
//   - GET requests with a User-Agent and Accept header
//   - One info-level log line per request (charmbracelet/log)
//   - Status mapping: 404 to [ErrNotFound], other failures to [ErrHTTP]
//   - Request events through [observability.HTTPHooks]
//
// There is no caching and no retry; every call is one request. Timeouts and
// cancellation come from the context and the *http.Client passed in.
//
// # Errors
//
// All errors are *errors.Error values. Match them with the standard library:
//
//	if errors.Is(err, integrations.ErrNotFound) { ... }
//
// or by code with [errs.Is].
//
// # Adding a New Registry
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Embed [Client] and build request URLs against a configurable base URL
//  4. Convert wire structs into the public record types
//
// [metacpan]: github.com/matzehuels/metacpan/pkg/integrations/metacpan
// [observability.HTTPHooks]: github.com/matzehuels/metacpan/pkg/observability.HTTPHooks
// [errs.Is]: github.com/matzehuels/metacpan/pkg/errors.Is
package integrations
