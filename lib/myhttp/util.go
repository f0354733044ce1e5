package myhttp

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// LocalPath returns destination when it is a path on this site, otherwise fallback.
func LocalPath(destination string, fallback string) string {
	if destination == "" || !strings.HasPrefix(destination, "/") || strings.HasPrefix(destination, "//") ||
		strings.HasPrefix(destination, "/\\") {
		return fallback
	}
	u, err := url.Parse(destination)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return destination
}
