package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRedirectPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"internal path passes through", "/admin/staffs", "/admin/staffs"},
		{"path with query passes through", "/admin/reports?staff=2", "/admin/reports?staff=2"},
		{"empty rejected", "", ""},
		{"relative rejected", "admin/staffs", ""},
		{"absolute url rejected", "https://evil.example/phish", ""},
		{"protocol-relative rejected", "//evil.example/phish", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRedirectPath(tt.input))
		})
	}
}

func TestBuildLoginRedirectPath(t *testing.T) {
	assert.Equal(t, "/login?redirect=%2Fadmin%2Fstaffs", BuildLoginRedirectPath("/admin/staffs"))

	// External targets are silently dropped in favor of the landing page.
	assert.Equal(t, "/login?redirect=%2Fadmin%2Freports", BuildLoginRedirectPath("//evil.example"))
	assert.Equal(t, "/login?redirect=%2Fadmin%2Freports", BuildLoginRedirectPath(""))
}
