package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("auth", "revoked", "01HGZ8VNRYXS8QKNJV5GRWPWDQ")
	assert.Equal(t, "learnhub:auth:revoked:01HGZ8VNRYXS8QKNJV5GRWPWDQ", key)

	withParams := GenerateCacheKey("stats", "dashboard", "global", "users", "courses")
	assert.Equal(t, "learnhub:stats:dashboard:global:users_courses", withParams)
}

func TestRevokedTokenKey(t *testing.T) {
	assert.Equal(t, "learnhub:auth:revoked:abc", RevokedTokenKey("abc"))
}
