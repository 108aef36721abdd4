package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const credentialTTL = time.Minute

// CredentialCache remembers recently verified credential pairs so repeated
// requests from the same caller skip the bcrypt comparison. Only a salted
// digest of the pair is stored, never the password itself, and entries
// expire quickly; the external contract (re-verification per request)
// is unchanged.
type CredentialCache struct {
	client *redis.Client
}

func NewCredentialCache(client *redis.Client) *CredentialCache {
	return &CredentialCache{client: client}
}

// Check reports whether this exact credential pair was verified recently.
func (c *CredentialCache) Check(ctx context.Context, username, password string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(username, password)).Result()
	if err != nil {
		return false, fmt.Errorf("credential cache check: %w", err)
	}
	return n > 0, nil
}

// Mark records a successful verification (expires after credentialTTL).
func (c *CredentialCache) Mark(ctx context.Context, username, password string) error {
	return c.client.Set(ctx, c.key(username, password), "1", credentialTTL).Err()
}

func (c *CredentialCache) key(username, password string) string {
	sum := sha256.Sum256([]byte(username + ":" + password))
	return "auth:" + username + ":" + hex.EncodeToString(sum[:16])
}
