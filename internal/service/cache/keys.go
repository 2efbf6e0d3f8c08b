package cache

import (
	"crypto/md5"
	"encoding/hex"
)

// Key builds a namespaced cache key from a payload. Hashing keeps keys
// bounded regardless of prompt length.
func Key(namespace, payload string) string {
	sum := md5.Sum([]byte(payload))
	return namespace + ":" + hex.EncodeToString(sum[:])
}
