package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"brandtracker-api/pkg/log"

	goredis "github.com/redis/go-redis/v9"
)

// channelPattern is the per-brand pub/sub channel. The websocket gateway
// subscribes to brand:* and fans messages out to connected dashboards.
const channelPattern = "brand:%s"

// message is the wire envelope published to Redis.
type message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type redisPublisher struct {
	l      log.Logger
	client *goredis.Client
}

// NewRedisPublisher returns a Publisher backed by Redis pub/sub.
func NewRedisPublisher(l log.Logger, client *goredis.Client) Publisher {
	return &redisPublisher{l: l, client: client}
}

func (p *redisPublisher) Publish(ctx context.Context, brandID, event string, payload any) {
	body, err := json.Marshal(message{Event: event, Data: payload})
	if err != nil {
		p.l.Errorf(ctx, "internal.realtime.Publish.Marshal: %v", err)
		return
	}

	channel := fmt.Sprintf(channelPattern, brandID)
	if err := p.client.Publish(ctx, channel, body).Err(); err != nil {
		p.l.Errorf(ctx, "internal.realtime.Publish.Publish: %v", err)
	}
}

// NopPublisher discards every event. Used in tests and when Redis is absent.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, string, string, any) {}
