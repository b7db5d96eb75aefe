package idempotency

import (
	"encoding/json"
	"time"

	"encore.dev/storage/cache"
)

type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// Key addresses a cached request by endpoint path and client key.
type Key struct {
	Resource string
	Key      string
}

type Entry struct {
	Status          Status          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

var Cluster = cache.NewCluster("orders-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Requests holds in-flight and completed invoice generation requests.
var Requests = cache.NewStructKeyspace[Key, Entry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
