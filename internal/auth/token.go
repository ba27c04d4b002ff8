package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	AccountTypeAdmin    = 1
	AccountTypeEmployee = 2
)

// Token is the auth payload issued by the auditing backend at login.
// ExpiresAt is a millisecond timestamp; zero means the token never expires.
type Token struct {
	Token       string `json:"token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	ExpiresAt   int64  `json:"expires_at,omitempty"`
	Username    string `json:"username,omitempty"`
	AccountType int    `json:"account_type,omitempty"`
}

func (t *Token) Valid(now time.Time) bool {
	if t == nil || t.Token == "" {
		return false
	}
	if t.ExpiresAt == 0 {
		return true
	}
	return now.UnixMilli() < t.ExpiresAt
}

// AuthorizationHeader renders "{token_type} {token}" for outgoing requests.
func (t *Token) AuthorizationHeader() string {
	if t == nil || t.Token == "" {
		return ""
	}
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + t.Token
}

// AuthedUsername prefers the explicitly stored username, falling back to the
// JWT "sub" claim when the backend embedded one.
func (t *Token) AuthedUsername() string {
	if t == nil || t.Token == "" {
		return ""
	}
	if t.Username != "" {
		return t.Username
	}
	claims := t.claims()
	if claims == nil {
		return ""
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

// AuthedAccountType decodes the role from the stored token, defaulting to the
// employee role whenever the claim is missing or undecodable.
func (t *Token) AuthedAccountType() int {
	if t == nil || t.Token == "" {
		return AccountTypeEmployee
	}
	if t.AccountType != 0 {
		return t.AccountType
	}
	claims := t.claims()
	if claims == nil {
		return AccountTypeEmployee
	}
	if at, ok := claims["account_type"].(float64); ok {
		return int(at)
	}
	return AccountTypeEmployee
}

func (t *Token) IsAdmin() bool {
	return t.AuthedAccountType() == AccountTypeAdmin
}

// claims parses the embedded JWT payload without verifying the signature;
// the console never trusts the claims for authorization, only for display.
func (t *Token) claims() jwt.MapClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(t.Token, claims); err != nil {
		return nil
	}
	return claims
}
