package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DiskCache persists fetched document text, one JSON file per URL keyed by
// a SHA-256 hash of the URL.
type DiskCache struct {
	dir string
	ttl time.Duration
}

type cacheEntry struct {
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(dir string, ttl time.Duration) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}
	return &DiskCache{dir: dir, ttl: ttl}, nil
}

// Get returns the cached text for url. With allowStale, expired entries
// are still returned; otherwise an expired entry counts as a miss.
func (c *DiskCache) Get(url string, allowStale bool) (string, bool) {
	data, err := os.ReadFile(c.pathFor(url))
	if err != nil {
		return "", false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}

	if !allowStale && time.Now().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Text, true
}

// Put stores the text for url with the cache's TTL.
func (c *DiskCache) Put(url, text string) error {
	now := time.Now()
	entry := cacheEntry{
		Text:      text,
		FetchedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	path := c.pathFor(url)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing cache file %s: %w", path, err)
	}
	return nil
}

func (c *DiskCache) keyFor(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}

func (c *DiskCache) pathFor(url string) string {
	return filepath.Join(c.dir, c.keyFor(url)+".json")
}
