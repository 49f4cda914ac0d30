package core

import "testing"

func TestCleanStripsMarkup(t *testing.T) {
	s := NewSanitizer()

	cases := []struct {
		in   string
		want string
	}{
		{"hello world", "hello world"},
		{"hello <b>world</b>", "hello world"},
		{"<script>alert(1)</script>hi", "hi"},
		{"  padded  ", "padded"},
		{"<img src=x onerror=alert(1)>", ""},
		{"<style>body{}</style>", ""},
	}

	for _, tc := range cases {
		if got := s.Clean(tc.in); got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
