package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "webhook_events"
)

// EventType - тип исходящего события
type EventType string

const (
	// EventVoiceDebrief - запрос исходящего звонка репортеру для дебрифинга
	EventVoiceDebrief EventType = "voice_debrief"
	// EventBroadcast - экстренная секторная трансляция
	EventBroadcast EventType = "emergency_broadcast"
)

// Event - структура для данных вебхука
type Event struct {
	Type       EventType  `json:"type"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Title      string     `json:"title,omitempty"`
	Message    string     `json:"message,omitempty"`
	Sector     string     `json:"sector,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
