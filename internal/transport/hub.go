// Package transport exposes telemetry over WebSocket, REST and gRPC health.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// ErrHubClosed is returned by Publish after Close.
var ErrHubClosed = errors.New("transport: hub closed")

const (
	defaultSubscriberBuffer = 64
	defaultWriteTimeout     = 5 * time.Second
)

// HubConfig tunes subscriber handling.
type HubConfig struct {
	SubscriberBuffer int
	WriteTimeout     time.Duration
	// OriginPatterns lists extra origins allowed to open a WebSocket.
	OriginPatterns []string
}

// Envelope is the frame delivered to WebSocket subscribers.
type Envelope struct {
	Topic   model.Topic `json:"topic"`
	Payload any         `json:"payload"`
}

type subscriber struct {
	topics []model.Topic
	send   chan []byte
}

// Hub fans published payloads out to WebSocket subscribers. Publish never
// blocks on a subscriber: a full subscriber buffer drops the message for
// that subscriber only. Nothing on the publish path logs.
type Hub struct {
	mu     sync.RWMutex
	subs   map[model.Topic]map[*subscriber]struct{}
	closed bool

	marshaler gwruntime.Marshaler
	cfg       HubConfig
	metrics   HubMetrics
	logger    *zap.Logger
}

// NewHub builds an empty Hub.
func NewHub(cfg HubConfig, metrics HubMetrics, logger *zap.Logger) *Hub {
	if cfg.SubscriberBuffer <= 0 {
		cfg.SubscriberBuffer = defaultSubscriberBuffer
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	subs := make(map[model.Topic]map[*subscriber]struct{}, len(model.Topics()))
	for _, t := range model.Topics() {
		subs[t] = map[*subscriber]struct{}{}
	}
	return &Hub{
		subs:      subs,
		marshaler: &gwruntime.JSONBuiltin{},
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger.Named("network.ws"),
	}
}

// Publish encodes payload once and queues it to every subscriber of topic.
func (h *Hub) Publish(ctx context.Context, topic model.Topic, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := h.marshaler.Marshal(Envelope{Topic: topic, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", topic, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrHubClosed
	}

	delivered, dropped := 0, 0
	for sub := range h.subs[topic] {
		select {
		case sub.send <- b:
			delivered++
		default:
			dropped++
		}
	}
	if h.metrics != nil {
		h.metrics.ObservePublish(string(topic), delivered, dropped)
	}
	return nil
}

// Subscribers returns the number of subscribers of topic.
func (h *Hub) Subscribers(topic model.Topic) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}

// ServeHTTP upgrades the request to a WebSocket subscribed to the topics in
// the repeated `topic` query parameter, or to every topic when absent.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := parseTopics(r.URL.Query()["topic"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: h.cfg.OriginPatterns})
	if err != nil {
		h.logger.Debug("websocket accept failed", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	sub := &subscriber{topics: topics, send: make(chan []byte, h.cfg.SubscriberBuffer)}
	if !h.register(sub) {
		_ = conn.Close(websocket.StatusGoingAway, "shutting down")
		return
	}
	defer h.unregister(sub)

	h.logger.Info("subscriber connected", zap.String("remote", r.RemoteAddr), zap.Any("topics", topics))
	defer h.logger.Info("subscriber disconnected", zap.String("remote", r.RemoteAddr))

	// subscribers only listen, CloseRead handles control frames
	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case b, ok := <-sub.send:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "shutting down")
				return
			}
			if err := h.write(ctx, conn, b); err != nil {
				h.logger.Debug("subscriber write failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
				return
			}
		}
	}
}

// Close disconnects every subscriber and rejects further publishes.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	seen := map[*subscriber]struct{}{}
	for topic, subs := range h.subs {
		for sub := range subs {
			if _, ok := seen[sub]; !ok {
				close(sub.send)
				seen[sub] = struct{}{}
			}
		}
		h.subs[topic] = map[*subscriber]struct{}{}
		h.setSubscribers(topic)
	}
}

func (h *Hub) write(ctx context.Context, conn *websocket.Conn, b []byte) error {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.WriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, b)
}

func (h *Hub) register(sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	for _, t := range sub.topics {
		h.subs[t][sub] = struct{}{}
		h.setSubscribers(t)
	}
	return true
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range sub.topics {
		if _, ok := h.subs[t][sub]; ok {
			delete(h.subs[t], sub)
			h.setSubscribers(t)
		}
	}
}

// setSubscribers must be called with mu held.
func (h *Hub) setSubscribers(topic model.Topic) {
	if h.metrics != nil {
		h.metrics.SetSubscribers(string(topic), len(h.subs[topic]))
	}
}

func parseTopics(raw []string) ([]model.Topic, error) {
	if len(raw) == 0 {
		return model.Topics(), nil
	}
	seen := map[model.Topic]struct{}{}
	out := make([]model.Topic, 0, len(raw))
	for _, s := range raw {
		t, ok := model.ParseTopic(s)
		if !ok {
			return nil, fmt.Errorf("unknown topic %q", s)
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}
