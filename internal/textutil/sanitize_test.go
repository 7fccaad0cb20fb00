package textutil

import "testing"

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Show: The Movie", "Show_ The Movie"},
		{`a\b/c:d*e?f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"  padded  ", "padded"},
		{"", ""},
		{"plain name", "plain name"},
		{"tab\tname", "tab_name"},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  The   Quiet  Show "); got != "The Quiet Show" {
		t.Fatalf("CollapseSpaces = %q", got)
	}
}
