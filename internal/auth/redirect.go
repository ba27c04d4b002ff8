package auth

import (
	"net/url"
	"strings"
)

const (
	LoginPath          = "/login"
	DefaultLandingPath = "/admin/reports"
)

// NormalizeRedirectPath accepts only internal paths: must start with "/" and
// must not start with "//" (which browsers treat as protocol-relative).
// Anything else returns "".
func NormalizeRedirectPath(input string) string {
	if input == "" {
		return ""
	}
	if !strings.HasPrefix(input, "/") {
		return ""
	}
	if strings.HasPrefix(input, "//") {
		return ""
	}
	return input
}

// BuildLoginRedirectPath builds the login URL carrying the attempted
// destination, falling back to the default landing page for external or
// empty targets.
func BuildLoginRedirectPath(currentHref string) string {
	redirectTo := NormalizeRedirectPath(currentHref)
	if redirectTo == "" {
		redirectTo = DefaultLandingPath
	}
	return LoginPath + "?redirect=" + url.QueryEscape(redirectTo)
}
