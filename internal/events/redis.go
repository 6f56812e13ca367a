// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

var ErrPublishingEvent = errors.New("error publishing event")

// listPusher is the part of *redis.Client the publisher uses.
type listPusher interface {
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	Close() error
}

// redisPublisher appends events to a redis list.
type redisPublisher struct {
	client listPusher
	queue  string
	logger *logger.Logger
}

// NewPublisher returns the redis publisher when cfg.RedisAddress is set and
// the no-op publisher otherwise. The redis server must answer a PING
// before the publisher is returned.
func NewPublisher(ctx context.Context, cfg config.Events, log *logger.Logger) (Publisher, error) {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "NewPublisher").Msg("no redis address configured, events are discarded")
		return NewNopPublisher(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewPublisher").Str("address", cfg.RedisAddress).Msg("redis is not reachable")
		client.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	log.Info().Str("func", "NewPublisher").Str("queue", cfg.Queue).Msg("publishing events to redis")

	return newRedisPublisher(client, cfg.Queue, log), nil
}

func newRedisPublisher(client listPusher, queue string, log *logger.Logger) *redisPublisher {
	return &redisPublisher{
		client: client,
		queue:  queue,
		logger: log,
	}
}

func (p *redisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	if err = p.client.RPush(ctx, p.queue, payload).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*redisPublisher.Publish").
		Str("entity", string(event.Entity)).
		Str("action", string(event.Action)).
		Int64("id", event.ID).
		Msg("event published")
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}
