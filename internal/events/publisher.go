package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"frontdesk/internal/logger"
)

const (
	MemberSignedUp      = "member.signed_up"
	MemberRenewed       = "member.renewed"
	MemberStatusChanged = "member.status_changed"
	MemberCheckedIn     = "member.checked_in"
	MemberCheckedOut    = "member.checked_out"
	PaymentRecorded     = "payment.recorded"
)

// Event is one entry of the front desk activity feed.
type Event struct {
	Type       string                 `json:"type"`
	MemberID   string                 `json:"member_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher keeps the feed as a capped Redis list, newest entry first.
type RedisPublisher struct {
	redis  *redis.Client
	key    string
	maxLen int64
}

func NewRedisPublisher(addr, key string, maxLen int64) *RedisPublisher {
	return newRedisPublisher(redis.NewClient(&redis.Options{Addr: addr}), key, maxLen)
}

func newRedisPublisher(client *redis.Client, key string, maxLen int64) *RedisPublisher {
	if maxLen <= 0 {
		maxLen = 1000
	}
	return &RedisPublisher{
		redis:  client,
		key:    key,
		maxLen: maxLen,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.redis.LPush(ctx, p.key, data).Err(); err != nil {
		return fmt.Errorf("push event %s: %w", event.Type, err)
	}
	if err := p.redis.LTrim(ctx, p.key, 0, p.maxLen-1).Err(); err != nil {
		return fmt.Errorf("trim %s: %w", p.key, err)
	}

	logger.Debugf("Event published: %s member=%s", event.Type, event.MemberID)
	return nil
}

// Recent returns up to n events, newest first. Entries that fail to decode
// are skipped.
func (p *RedisPublisher) Recent(ctx context.Context, n int64) ([]Event, error) {
	if n <= 0 {
		return []Event{}, nil
	}

	raw, err := p.redis.LRange(ctx, p.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p.key, err)
	}

	out := make([]Event, 0, len(raw))
	for _, item := range raw {
		var e Event
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			logger.Errorf("Bad event data: %v", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.redis.Ping(ctx).Err()
}

func (p *RedisPublisher) Close() error {
	return p.redis.Close()
}

// NopPublisher drops every event. Used when no Redis address is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
