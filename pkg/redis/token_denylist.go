package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TokenDenylist tracks refresh tokens revoked by logout. Tokens are stored
// hashed; entries expire together with the token itself.
type TokenDenylist struct{}

// NewTokenDenylist creates a new denylist backed by the shared Redis client
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{}
}

// Revoke marks a refresh token as revoked until it would have expired anyway
func (d *TokenDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return Set(ctx, denylistKey(token), "revoked", ttl)
}

// IsRevoked reports whether the refresh token has been revoked
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	return Exists(ctx, denylistKey(token))
}

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "denylist:" + hex.EncodeToString(sum[:])
}
