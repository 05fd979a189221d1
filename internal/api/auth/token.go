// Package auth resolves bearer tokens to authenticated member identities.
// Token issuance and credential management live in the external account
// system; this package only verifies and extracts the member id.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

type contextKey struct{}

var memberIDKey contextKey

// NewToken signs a short-lived HMAC token for the member. Used by tests and
// operational tooling; production tokens come from the account service with
// the same shared secret.
func NewToken(secret string, memberID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(memberID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseMemberID verifies the token signature and expiry and returns the
// member id carried in the subject claim.
func ParseMemberID(secret, tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, ErrInvalidToken
	}
	memberID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || memberID <= 0 {
		return 0, ErrInvalidToken
	}
	return memberID, nil
}

// MemberIDFromRequest extracts and verifies the Authorization bearer token.
func MemberIDFromRequest(secret string, r *http.Request) (int64, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return 0, ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return 0, ErrInvalidToken
	}
	return ParseMemberID(secret, strings.TrimSpace(token))
}

// ContextWithMemberID stores the authenticated member id on the context.
func ContextWithMemberID(ctx context.Context, memberID int64) context.Context {
	return context.WithValue(ctx, memberIDKey, memberID)
}

// MemberIDFromContext returns the authenticated member id, if any.
func MemberIDFromContext(ctx context.Context) (int64, bool) {
	memberID, ok := ctx.Value(memberIDKey).(int64)
	return memberID, ok
}

// RequireMember writes 401 and returns false when no authenticated member is
// on the request context.
func RequireMember(w http.ResponseWriter, r *http.Request) (int64, bool) {
	memberID, ok := MemberIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return memberID, true
}
