package token

// Package token extracts identity claims from bearer tokens issued by the
// upstream work-agency API. Decoding is pure claim extraction with no I/O:
// the upstream API signs the tokens and re-verifies them on every call, so
// no key material lives in this service. Callers must treat any decode
// failure as "no session" and clear the stored credentials.

import (
	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/shshafin/work-agency-client-sub003/internal/domain/auth"
	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
)

// claims mirrors the upstream API's token payload.
type claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Decode parses a bearer token and returns its identity claims.
// Malformed tokens, tokens without a user identity, and roles outside the
// application set all fail with a decode error. Expiry is reported on the
// result and enforced by the session layer, not here.
func Decode(tokenString string) (domainauth.DecodedToken, error) {
	if tokenString == "" {
		return domainauth.DecodedToken{}, apperrors.Decode("empty token")
	}

	var c claims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(tokenString, &c); err != nil {
		return domainauth.DecodedToken{}, apperrors.Wrap(err, apperrors.ErrCodeDecode, "parse token")
	}

	userID := c.UserID
	if userID == "" {
		userID = c.Subject
	}
	if userID == "" {
		return domainauth.DecodedToken{}, apperrors.Decode("token carries no user identity")
	}

	role := domainauth.Role(c.Role)
	if !role.Valid() {
		return domainauth.DecodedToken{}, apperrors.Decodef("token carries unknown role %q", c.Role)
	}

	decoded := domainauth.DecodedToken{
		UserID: userID,
		Email:  c.Email,
		Role:   role,
	}
	if c.IssuedAt != nil {
		decoded.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		decoded.ExpiresAt = c.ExpiresAt.Time
	}
	return decoded, nil
}
