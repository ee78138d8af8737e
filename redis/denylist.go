package redis

import (
	"time"
)

const denylistPrefix = "denylist:"

// RevokeToken records a token id until its natural expiry. Logout is
// the only caller; once recorded the token no longer authenticates.
func RevokeToken(tokenID string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, denylistPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked. When redis is
// unavailable tokens are treated as live; expiry still bounds them.
func IsRevoked(tokenID string) bool {
	if Client == nil || tokenID == "" {
		return false
	}
	n, err := Client.Exists(Ctx, denylistPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return n > 0
}
