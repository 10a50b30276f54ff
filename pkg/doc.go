// Package pkg provides a Go client for MetaCPAN, the registry of Perl
// distributions.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [integrations] - Shared HTTP layer (GET, status mapping, request logging)
//  2. [integrations/metacpan] - MetaCPAN lookups and record types
//  3. [errors] - Coded errors: NOT_FOUND, HTTP_ERROR, INVALID_URL
//  4. [observability] - Optional hooks around every request
//  5. [buildinfo] - Version information for the User-Agent header
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/metacpan/pkg/integrations/metacpan"
//	)
//
//	client, err := metacpan.NewClient()
//	if err != nil {
//	    return err
//	}
//	info, err := client.GetDistributionInfo(context.Background(), "Moose")
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/metacpan/pkg/integrations
// [integrations/metacpan]: https://pkg.go.dev/github.com/matzehuels/metacpan/pkg/integrations/metacpan
// [errors]: https://pkg.go.dev/github.com/matzehuels/metacpan/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/metacpan/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/metacpan/pkg/buildinfo
package pkg
