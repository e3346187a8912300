package ws

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/goroutine"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
)

// События панели управления.
const (
	EventInboxUnread = "inbox.unread"
	EventInboxNew    = "inbox.new"
)

// Hub управляет WebSocket подключениями администраторов.
type Hub struct {
	mu         sync.RWMutex
	clients    map[uuid.UUID]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{}
}

// message без userID рассылается всем подключённым клиентам.
type message struct {
	userID  uuid.UUID
	payload []byte
}

// NewHub создаёт новый хаб.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		done:       make(chan struct{}),
	}
}

// Run запускает главный цикл хаба до отмены контекста.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg)
		}
	}
}

// Register добавляет клиента. После остановки хаба возвращает false.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish рассылает событие всем подключённым администраторам.
// Если очередь переполнена, событие отбрасывается: следующее его заменит.
func (h *Hub) Publish(event string, data any) error {
	return h.enqueue(uuid.Nil, event, data)
}

// SendToUser отправляет событие подключениям одного пользователя.
func (h *Hub) SendToUser(userID uuid.UUID, event string, data any) error {
	return h.enqueue(userID, event, data)
}

// ClientCount возвращает число активных подключений.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *Hub) enqueue(userID uuid.UUID, event string, data any) error {
	// Поле "type" содержит имя события, "data" — полезную нагрузку.
	raw, err := json.Marshal(map[string]any{
		"type": event,
		"data": data,
	})
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	select {
	case h.broadcast <- message{userID: userID, payload: raw}:
	default:
		if logger.Log != nil {
			logger.Log.WithField("event", event).Warn("ws: очередь рассылки переполнена, событие отброшено")
		}
	}
	return nil
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]struct{})
	}
	h.clients[client.userID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.userID]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			client.closeSend()
		}
		if len(clients) == 0 {
			delete(h.clients, client.userID)
		}
	}
}

func (h *Hub) send(msg message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	deliver := func(set map[*Client]struct{}) {
		for client := range set {
			select {
			case client.send <- msg.payload:
			default:
				// медленный клиент: отключаем
				c := client
				goroutine.SafeGo(c.Close)
			}
		}
	}

	if msg.userID != uuid.Nil {
		deliver(h.clients[msg.userID])
		return
	}
	for _, set := range h.clients {
		deliver(set)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, set := range h.clients {
		for client := range set {
			client.closeSend()
		}
		delete(h.clients, userID)
	}
}
