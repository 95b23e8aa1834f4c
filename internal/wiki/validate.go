package wiki

import (
	"net/url"
	"strings"
)

const Domain = "wikipedia.org"

// IsValidArticleURL reports whether raw is an http(s) URL on a Wikipedia host.
// It never touches the network.
func IsValidArticleURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" || !strings.HasSuffix(host, Domain) {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}
