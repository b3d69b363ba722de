// Package cache holds the shared report cache and the request fingerprint
// used as its key. One cache instance serves every report kind; the
// endpoint path is folded into the fingerprint.
package cache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sovinsight/internal/model"
)

// Fingerprint derives a deterministic key from the endpoint identity and
// the request body. The body is re-encoded with object keys sorted at
// every nesting level, so two requests equal up to key ordering hash the
// same.
func Fingerprint(endpoint string, body any) (string, error) {
	raw, ok := body.(json.RawMessage)
	if !ok {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("fingerprint encode: %w", err)
		}
		raw = encoded
	}

	canonical, err := canonicalize(raw)
	if err != nil {
		return "", fmt.Errorf("fingerprint canonicalize: %w", err)
	}

	sum := sha256.Sum256(append([]byte(endpoint+":"), canonical...))
	return hex.EncodeToString(sum[:]), nil
}

// canonicalize round-trips JSON through generic values. encoding/json
// writes map keys in sorted order, and UseNumber keeps numeric literals
// byte-stable.
func canonicalize(raw json.RawMessage) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// ReportCache is bounded by entry count and expires entries a fixed TTL
// after insertion. Get does not refresh the TTL; when the cache is full a
// non-expired insert evicts the least recently used entry.
type ReportCache struct {
	lru *expirable.LRU[string, model.ReportPayload]
}

func NewReportCache(maxEntries int, ttl time.Duration) *ReportCache {
	return &ReportCache{
		lru: expirable.NewLRU[string, model.ReportPayload](maxEntries, nil, ttl),
	}
}

func (c *ReportCache) Get(key string) (model.ReportPayload, bool) {
	return c.lru.Get(key)
}

func (c *ReportCache) Put(key string, payload model.ReportPayload) {
	c.lru.Add(key, payload)
}
