package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ratesignal-be/internal/pkg/logger"
)

// Hub fans store-change notifications out to every connected admin
// dashboard. Delivery is broadcast-only: there is no per-user addressing in
// a single-operator deployment.
type Hub struct {
	// Instance id, used to drop this instance's own redis echoes.
	id string

	// Registered dashboard connections keyed by connection id.
	clients map[string]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out (optional).
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

const redisChannel = "store_events"

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		id:         uuid.NewString(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard connected", map[string]interface{}{"client_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Dashboard disconnected", map[string]interface{}{"client_id": client.ID})
			}
			h.mu.Unlock()
		}
	}
}

// fanoutEnvelope wraps cross-instance relays so every hub can drop the
// echoes of its own publications.
type fanoutEnvelope struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

// Broadcast sends a store-change payload to all connected dashboards and,
// when redis is configured, to the dashboards of other instances.
func (h *Hub) Broadcast(payload json.RawMessage) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "store_changed",
		"data": payload,
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		env, _ := json.Marshal(fanoutEnvelope{Origin: h.id, Message: data})
		h.rdb.Publish(context.Background(), redisChannel, env)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"client_id": client.ID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if payload, ok := h.decodeFanout([]byte(msg.Payload)); ok {
			h.broadcastLocal(payload)
		}
	}
	log.Printf("redis subscription for %s closed", redisChannel)
}

// decodeFanout unpacks a cross-instance relay. Returns false for this
// instance's own echoes and for malformed payloads.
func (h *Hub) decodeFanout(raw []byte) ([]byte, bool) {
	var env fanoutEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Message) == 0 {
		h.logger.Warn("Hub", "Dropping malformed fanout payload", map[string]interface{}{"error": "bad envelope"})
		return nil, false
	}
	if env.Origin == h.id {
		return nil, false
	}
	return env.Message, true
}
