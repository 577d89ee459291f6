package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/goban-backend/internal/entity"
)

const writeWait = 5 * time.Second

type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (that *subscriber) write(message Message) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return that.conn.WriteJSON(message)
}

// Hub fans accepted moves out to the WebSocket subscribers of each game.
type Hub struct {
	logger   *zap.SugaredLogger
	upgrader websocket.Upgrader

	mu          sync.Mutex
	subscribers map[string]map[*subscriber]struct{}
}

func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		logger: logger.With("component", "feed"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		subscribers: make(map[string]map[*subscriber]struct{}),
	}
}

// Serve upgrades the request and keeps the connection subscribed to gameID until the
// client goes away. Anything the client sends is discarded.
func (that *Hub) Serve(w http.ResponseWriter, r *http.Request, gameID string) {
	log := that.logger.With("method", "Serve", "game_id", gameID)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorw("failed to upgrade connection", "error", err)
		return
	}

	sub := &subscriber{conn: conn}
	that.add(gameID, sub)
	log.Infow("subscriber connected", "remote", r.RemoteAddr)

	defer func() {
		that.remove(gameID, sub)
		log.Infow("subscriber disconnected", "remote", r.RemoteAddr)
	}()

	for {
		if _, _, err = conn.NextReader(); err != nil {
			return
		}
	}
}

// Notify sends result to every subscriber of its game. Subscribers that fail are dropped.
func (that *Hub) Notify(result *entity.MoveResult) {
	message := Message{Action: actionMove, Payload: result}

	for _, sub := range that.snapshot(result.GameID) {
		if err := sub.write(message); err != nil {
			that.logger.Warnw("dropping subscriber", "game_id", result.GameID, "error", err)
			that.remove(result.GameID, sub)
		}
	}
}

// Subscribers returns how many connections follow gameID.
func (that *Hub) Subscribers(gameID string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.subscribers[gameID])
}

// CloseGame disconnects the subscribers of a game that no longer exists.
func (that *Hub) CloseGame(gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	subs := that.subscribers[gameID]
	for sub := range subs {
		_ = sub.conn.Close()
	}
	delete(that.subscribers, gameID)

	that.logger.Infow("game feed closed", "game_id", gameID, "subscribers", len(subs))
}

// Close disconnects every subscriber.
func (that *Hub) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for gameID, subs := range that.subscribers {
		for sub := range subs {
			_ = sub.conn.Close()
		}
		delete(that.subscribers, gameID)
	}
}

func (that *Hub) add(gameID string, sub *subscriber) {
	that.mu.Lock()
	defer that.mu.Unlock()

	subs, ok := that.subscribers[gameID]
	if !ok {
		subs = make(map[*subscriber]struct{})
		that.subscribers[gameID] = subs
	}
	subs[sub] = struct{}{}
}

func (that *Hub) remove(gameID string, sub *subscriber) {
	that.mu.Lock()
	defer that.mu.Unlock()

	subs, ok := that.subscribers[gameID]
	if !ok {
		return
	}

	if _, ok = subs[sub]; ok {
		delete(subs, sub)
		_ = sub.conn.Close()
	}

	if len(subs) == 0 {
		delete(that.subscribers, gameID)
	}
}

func (that *Hub) snapshot(gameID string) []*subscriber {
	that.mu.Lock()
	defer that.mu.Unlock()

	subs := make([]*subscriber, 0, len(that.subscribers[gameID]))
	for sub := range that.subscribers[gameID] {
		subs = append(subs, sub)
	}

	return subs
}
