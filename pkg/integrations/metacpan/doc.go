// Package metacpan provides an HTTP client for the MetaCPAN API.
//
// # Overview
//
// This package fetches Perl distribution metadata from MetaCPAN
// (https://metacpan.org), the index of CPAN releases.
//
// # Usage
//
//	client, err := metacpan.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dist, err := client.ResolveDistribution(ctx, "Scalar::Util")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	info, err := client.GetDistributionInfo(ctx, dist)
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // no such distribution
//	}
//
//	fmt.Println(info.Name, info.Version)
//
// # Endpoints
//
//   - GET <base>/release/<distribution>: latest release of a distribution
//   - GET <base>/module/<module>: the distribution owning a module
//
// The base URL defaults to [DefaultBaseURL]; tests and mirrors override it
// with [WithBaseURL].
//
// # DistributionInfo
//
// [Client.GetDistributionInfo] returns a [DistributionInfo] containing:
//
//   - Name: distribution name (from "distribution")
//   - Description: the release abstract
//   - Version: always a string, even when the registry sends a JSON number
//   - License: license identifiers
//   - DownloadURL: tarball location
//   - Dependencies: prerequisites with phase and relationship
//   - Resources: homepage and repository links
//
// Every field except Name may be missing from the response. The flat
// release document is the canonical shape; a document that nests the
// release fields under "metadata" decodes to the same record.
//
// # Errors
//
// Failures carry one of three codes from [errors]: NOT_FOUND for a 404,
// HTTP_ERROR for any other transport, status or decoding failure, and
// INVALID_URL when the name cannot be used as a path segment. Nothing is
// retried.
//
// [errors]: github.com/matzehuels/metacpan/pkg/errors
package metacpan
