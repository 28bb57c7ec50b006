package util

import "testing"

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-06-25 14:03:05", "2023-06-25-14-03-05"},
		{"2023/6/25 14:03", "2023-6-25-14-03"},
		{"--abc--", "abc"},
		{"中文2023", "2023"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeToken(tc.in); got != tc.want {
			t.Fatalf("SanitizeToken(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("got %q", got)
	}
	if got := FirstNonEmpty("", "  "); got != "" {
		t.Fatalf("got %q", got)
	}
}
