// README: Durable single-record trip storage backed by Redis.
package trips

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// recordKey is the fixed namespace key holding the whole serialized
// collection, the durable analog of the browser storage slot the trips
// originally lived in.
const recordKey = "wanderlust:trips"

// DefaultMaxRecordBytes caps the serialized collection at roughly the quota a
// browser storage slot would allow.
const DefaultMaxRecordBytes = 5 << 20

// Storage reads and writes the one durable record the collection lives in.
// The service treats the record as opaque bytes; decoding happens above.
type Storage interface {
	// Read returns the current record, or nil when none has been written.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the record in a single put. Implementations return
	// ErrStorageFull when the payload exceeds their capacity ceiling.
	Write(ctx context.Context, data []byte) error
}

// RedisStorage keeps the collection under a single Redis string key.
type RedisStorage struct {
	redis    *redis.Client
	maxBytes int
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{redis: client, maxBytes: DefaultMaxRecordBytes}
}

func (s *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	data, err := s.redis.Get(ctx, recordKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStorage) Write(ctx context.Context, data []byte) error {
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return ErrStorageFull
	}
	return s.redis.Set(ctx, recordKey, data, 0).Err()
}
