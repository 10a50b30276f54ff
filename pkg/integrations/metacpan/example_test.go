package metacpan_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/metacpan/pkg/integrations/metacpan"
)

func ExampleClient_GetDistributionInfo() {
	// A stand-in registry; real code uses metacpan.NewClient() with no options.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/module/Scalar::Util":
			fmt.Fprint(w, `{"distribution": "Scalar-List-Utils"}`)
		case "/v1/release/Scalar-List-Utils":
			fmt.Fprint(w, `{"distribution": "Scalar-List-Utils", "version": 1.63, "license": ["perl_5"]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := metacpan.NewClient(
		metacpan.WithBaseURL(server.URL+"/v1/"),
		metacpan.WithLogger(log.New(io.Discard)),
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	ctx := context.Background()
	dist, err := client.ResolveDistribution(ctx, "Scalar::Util")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	info, err := client.GetDistributionInfo(ctx, dist)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Name:", info.Name)
	fmt.Println("Version:", info.Version)
	fmt.Println("License:", info.License)
	// Output:
	// Name: Scalar-List-Utils
	// Version: 1.63
	// License: [perl_5]
}

func ExampleDistributionInfo_DependenciesFor() {
	info := metacpan.DistributionInfo{
		Name: "Moose",
		Dependencies: []metacpan.Dependency{
			{Module: "Class::Load", Phase: "runtime", Relationship: "requires", Version: "0.09"},
			{Module: "Test::Fatal", Phase: "test", Relationship: "requires", Version: "0.001"},
		},
	}
	for _, d := range info.DependenciesFor("runtime", "requires") {
		fmt.Println(d.Module, d.Version)
	}
	// Output:
	// Class::Load 0.09
}
