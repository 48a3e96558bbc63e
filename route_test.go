package hashpages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string // description of this test case
		route string
		want  string
	}{
		{
			name:  "Empty string",
			route: "",
			want:  "#",
		},
		{
			name:  "Bare route",
			route: "settings",
			want:  "#settings",
		},
		{
			name:  "Already normalized",
			route: "#home",
			want:  "#home",
		},
		{
			name:  "Doubled delimiter",
			route: "##home",
			want:  "#home",
		},
		{
			name:  "Query stripped",
			route: "#about?ref=1",
			want:  "#about",
		},
		{
			name:  "Bare route with query",
			route: "about?ref=1&x=2",
			want:  "#about",
		},
		{
			name:  "Only a query",
			route: "?ref=1",
			want:  "#",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.route)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Errorf("Normalize() mismatch (-got +want):\n%s", diff)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize() not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestFragmentKeepsQuery(t *testing.T) {
	if got := fragment("about?ref=1"); got != "#about?ref=1" {
		t.Errorf("fragment() = %q, want %q", got, "#about?ref=1")
	}
	if got := fragment("#about?ref=1"); got != "#about?ref=1" {
		t.Errorf("fragment() = %q, want %q", got, "#about?ref=1")
	}
}
