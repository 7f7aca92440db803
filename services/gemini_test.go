package services

import "testing"

func TestCleanModelOutput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  {\"a\":1}  ", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```JSON\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\nplain\n```", "plain"},
		{"no fences", "no fences"},
	}
	for _, tc := range cases {
		if got := cleanModelOutput(tc.in); got != tc.want {
			t.Errorf("cleanModelOutput(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
