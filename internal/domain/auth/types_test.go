package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	valid := []Role{RoleSuperAdmin, RoleAdmin, RoleModerator}
	for _, r := range valid {
		assert.True(t, r.Valid(), "role %q should be valid", r)
	}

	invalid := []Role{"", "user", "guest", "SUPER_ADMIN", "root"}
	for _, r := range invalid {
		assert.False(t, r.Valid(), "role %q should be invalid", r)
	}
}

func TestDecodedTokenExpired(t *testing.T) {
	now := time.Now()

	future := DecodedToken{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, future.Expired(now))

	past := DecodedToken{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, past.Expired(now))

	// No expiry claim: never considered expired locally.
	noClaim := DecodedToken{}
	assert.False(t, noClaim.Expired(now))
}
