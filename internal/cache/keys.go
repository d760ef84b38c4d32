package cache

import "strings"

const (
	GlobalKeyPrefix = "learnhub"
)

// GenerateCacheKey builds a namespaced cache key for a given service,
// object type and identifier.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// RevokedTokenKey is the denylist entry for a logged-out session token.
func RevokedTokenKey(jti string) string {
	return GenerateCacheKey("auth", "revoked", jti)
}
