package metacpan

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlexString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"string", `"1.23"`, "1.23", false},
		{"number", `1.23`, "1.23", false},
		{"trailing zeros kept", `0.010`, "0.010", false},
		{"integer", `2`, "2", false},
		{"dotted string", `"v1.2.3"`, "v1.2.3", false},
		{"null", `null`, "", false},
		{"bool", `true`, "true", false},
		{"object", `{"v": 1, "w": [2, 3]}`, `{"v":1,"w":[2,3]}`, false},
		{"array", `[1, "a"]`, `[1,"a"]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				Version flexString `json:"version"`
			}
			err := json.Unmarshal([]byte(`{"version": `+tt.input+`}`), &v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && string(v.Version) != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, v.Version, tt.want)
			}
		})
	}
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"array", `["perl_5", "artistic_2"]`, []string{"perl_5", "artistic_2"}},
		{"single string", `"perl"`, []string{"perl"}},
		{"null", `null`, nil},
		{"empty array", `[]`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				License stringList `json:"license"`
			}
			if err := json.Unmarshal([]byte(`{"license": `+tt.input+`}`), &v); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, []string(v.License)); diff != "" {
				t.Errorf("Unmarshal(%s) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestDependenciesFor(t *testing.T) {
	info := &DistributionInfo{
		Name: "Moose",
		Dependencies: []Dependency{
			{Module: "Class::Load", Phase: "runtime", Relationship: "requires", Version: "0.09"},
			{Module: "Test::Fatal", Phase: "test", Relationship: "requires", Version: "0.001"},
			{Module: "Data::OptList", Phase: "runtime", Relationship: "recommends", Version: "0.107"},
			{Module: "Test::More", Phase: "test", Relationship: "requires", Version: "0.88"},
		},
	}

	tests := []struct {
		name         string
		phase        string
		relationship string
		want         []string
	}{
		{"runtime requires", "runtime", "requires", []string{"Class::Load"}},
		{"all test", "test", "", []string{"Test::Fatal", "Test::More"}},
		{"all recommends", "", "recommends", []string{"Data::OptList"}},
		{"everything", "", "", []string{"Class::Load", "Test::Fatal", "Data::OptList", "Test::More"}},
		{"nothing", "develop", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, d := range info.DependenciesFor(tt.phase, tt.relationship) {
				got = append(got, d.Module)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DependenciesFor(%q, %q) mismatch (-want +got):\n%s", tt.phase, tt.relationship, diff)
			}
		})
	}
}

func TestRepoURL(t *testing.T) {
	tests := []struct {
		name string
		repo *Repository
		want string
	}{
		{"no repository", nil, ""},
		{"web preferred", &Repository{Web: "https://github.com/moose/Moose", URL: "git://github.com/moose/Moose.git"}, "https://github.com/moose/Moose"},
		{"clone url normalized", &Repository{Type: "git", URL: "git://github.com/moose/Moose.git"}, "https://github.com/moose/Moose"},
		{"empty repository", &Repository{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &DistributionInfo{Name: "Moose", Resources: Resources{Repository: tt.repo}}
			if got := info.RepoURL(); got != tt.want {
				t.Errorf("RepoURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
