package feed

import (
	"cardamom-auction/utils"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

// RedisRelay publishes local events to a Redis channel and replays events
// published by other instances into the local hub.
type RedisRelay struct {
	client  *redis.Client
	channel string
	local   *Hub
	origin  string

	mu        sync.RWMutex
	listeners []func(Event)
}

var _ Notifier = (*RedisRelay)(nil)

// NewRedisRelay creates a relay; origin identifies this instance so it can skip its own messages
func NewRedisRelay(client *redis.Client, channel string, local *Hub) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
		local:   local,
		origin:  utils.GenerateID(),
	}
}

// ConnectRedis opens a client and verifies it with a ping
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rds := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := rds.Ping(ctx).Err(); err != nil {
		rds.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rds, nil
}

// OnRemote registers fn to run for every event received from another instance
func (r *RedisRelay) OnRemote(fn func(Event)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Notify delivers ev locally and publishes it for other instances.
// A failed publish is logged; local subscribers are already notified.
func (r *RedisRelay) Notify(ctx context.Context, ev Event) {
	r.local.Notify(ctx, ev)

	ev.Origin = r.origin
	payload, err := json.Marshal(ev)
	if err != nil {
		utils.Error("feed: failed to encode event", map[string]any{"lot_id": ev.LotID, "error": err.Error()})
		return
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		utils.Warn("feed: failed to publish event", map[string]any{"lot_id": ev.LotID, "channel": r.channel, "error": err.Error()})
	}
}

// Run consumes the channel until ctx is cancelled
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("feed: subscribe %s: %w", r.channel, err)
	}
	utils.Info("feed: relay subscribed", map[string]any{"channel": r.channel})

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.handle(ctx, msg.Payload)
		}
	}
}

func (r *RedisRelay) handle(ctx context.Context, payload string) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		utils.Warn("feed: dropping malformed event", map[string]any{"error": err.Error()})
		return
	}
	if ev.Origin == r.origin {
		return
	}

	r.local.Notify(ctx, ev)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, fn := range r.listeners {
		fn(ev)
	}
}
