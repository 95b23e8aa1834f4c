package wiki_test

import (
	"testing"

	"wikisummary/internal/wiki"
)

func TestIsValidArticleURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"English article", "https://en.wikipedia.org/wiki/Cat", true},
		{"Plain http", "http://de.wikipedia.org/wiki/Katze", true},
		{"Mobile host", "https://en.m.wikipedia.org/wiki/Cat", true},
		{"Upper-case host", "https://EN.WIKIPEDIA.ORG/wiki/Cat", true},
		{"Other host", "https://example.com", false},
		{"FTP scheme", "ftp://en.wikipedia.org/x", false},
		{"No scheme", "en.wikipedia.org/wiki/Cat", false},
		{"Empty", "", false},
		{"Garbage", "::not a url::", false},
		{"Suffix lookalike host", "https://wikipedia.org.evil.com/wiki/Cat", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := wiki.IsValidArticleURL(test.url); got != test.want {
				t.Errorf("IsValidArticleURL(%q) = %v, want %v", test.url, got, test.want)
			}
		})
	}
}
