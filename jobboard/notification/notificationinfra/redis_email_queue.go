package notificationinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
	"github.com/go-redis/redis/v8"
)

// RedisEmailQueue implements notification.EmailQueue using Redis lists,
// with a sorted set holding delayed retries.
type RedisEmailQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisEmailQueue creates a new Redis-based email queue
func NewRedisEmailQueue(client *redis.Client, queueName string) *RedisEmailQueue {
	return &RedisEmailQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a message to the queue
func (q *RedisEmailQueue) Enqueue(ctx context.Context, msg *notification.EmailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email for %s: %w", msg.To, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue email for %s: %w", msg.To, err)
	}

	return nil
}

// Dequeue pops a message from the queue, blocking up to timeout.
// Returns nil without error when the queue stays empty.
func (q *RedisEmailQueue) Dequeue(ctx context.Context, timeout time.Duration) (*notification.EmailMessage, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil is returned when the timeout elapses
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue email: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var msg notification.EmailMessage
	if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
		return nil, fmt.Errorf("unmarshal email payload: %w", err)
	}

	return &msg, nil
}

// EnqueueDelayed schedules a message for later delivery (for retries)
func (q *RedisEmailQueue) EnqueueDelayed(ctx context.Context, msg *notification.EmailMessage, delay time.Duration) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal delayed email for %s: %w", msg.To, err)
	}

	score := float64(time.Now().Add(delay).Unix())
	delayedQueue := q.queueName + ":delayed"

	if err := q.client.ZAdd(ctx, delayedQueue, &redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed email for %s: %w", msg.To, err)
	}

	return nil
}

// MoveDelayedToReady moves due delayed messages back to the main queue
func (q *RedisEmailQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	delayedQueue := q.queueName + ":delayed"
	now := float64(time.Now().Unix())

	msgs, err := q.client.ZRangeByScore(ctx, delayedQueue, &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed emails: %w", err)
	}

	if len(msgs) == 0 {
		return 0, nil
	}

	pipe := q.client.Pipeline()
	for _, msg := range msgs {
		pipe.LPush(ctx, q.queueName, msg)
		pipe.ZRem(ctx, delayedQueue, msg)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed emails to ready: %w", err)
	}

	return len(msgs), nil
}

// Size returns the number of messages waiting in the queue
func (q *RedisEmailQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// Ping checks if the Redis connection is alive
func (q *RedisEmailQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
