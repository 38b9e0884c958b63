package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/vikasavnish/marketpulse/internal/config"
)

// ConnectRedis establishes a connection to Redis
func ConnectRedis(config config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// RedisSink stores the latest market snapshot under a key and announces it
// on a pub/sub channel.
type RedisSink struct {
	client  *redis.Client
	key     string
	channel string
}

func NewRedisSink(client *redis.Client, config config.RedisConfig) *RedisSink {
	return &RedisSink{
		client:  client,
		key:     config.Key,
		channel: config.Channel,
	}
}

// Publish writes the snapshot and notifies subscribers in one round trip
func (s *RedisSink) Publish(ctx context.Context, payload []byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key, payload, 0)
		pipe.Publish(ctx, s.channel, payload)
		return nil
	})
	return err
}
