package socket

import (
	"context"
	"log"
	"sync"

	"sponsorlink_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// subKey identifies one connection's subscription to one match's feed.
type subKey struct {
	connID  string
	matchID string
}

// subscriptions tracks the hub cancel for every live (connection, match)
// subscription, so leaving one match never tears down a connection's other
// feeds and a dropped client never leaks a live listener.
type subscriptions struct {
	mu      sync.Mutex
	cancels map[subKey]func()
}

func newSubscriptions() *subscriptions {
	return &subscriptions{cancels: make(map[subKey]func())}
}

// add registers cancel under (connID, matchID). It reports false and leaves
// the existing registration in place when the connection already subscribes
// to that match.
func (s *subscriptions) add(connID, matchID string, cancel func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := subKey{connID, matchID}
	if _, active := s.cancels[key]; active {
		return false
	}
	s.cancels[key] = cancel
	return true
}

// cancelMatch cancels only the (connID, matchID) subscription, if any.
func (s *subscriptions) cancelMatch(connID, matchID string) {
	key := subKey{connID, matchID}
	s.mu.Lock()
	cancel := s.cancels[key]
	delete(s.cancels, key)
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// cancelConn cancels every subscription the connection holds.
func (s *subscriptions) cancelConn(connID string) {
	s.mu.Lock()
	var cancels []func()
	for key, cancel := range s.cancels {
		if key.connID == connID {
			cancels = append(cancels, cancel)
			delete(s.cancels, key)
		}
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

// NewSocketServer initializes the Socket.IO server backing the live message
// feed. A client emits "join" with a match ID and from then on receives
// "messages" events carrying the full ordered log, one per change, until it
// leaves that match or disconnects.
func NewSocketServer(chatService *services.ChatService) *socketio.Server {
	server := socketio.NewServer(nil)
	subs := newSubscriptions()

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("Invalid matchId in join request")
			return
		}

		ch, cancel := chatService.Subscribe(matchID)
		if !subs.add(s.ID(), matchID, cancel) {
			// Duplicate join; the original subscription stays live.
			cancel()
			return
		}
		log.Printf("Socket %s joined match %s", s.ID(), matchID)
		s.Join(matchID)

		// Initial snapshot, then live updates from the hub.
		if snapshot, err := chatService.ListMessages(context.Background(), matchID); err == nil {
			s.Emit("messages", snapshot)
		} else {
			log.Printf("Failed to load initial messages for match %s: %v", matchID, err)
		}

		go func() {
			for snapshot := range ch {
				s.Emit("messages", snapshot)
			}
		}()
	})

	server.OnEvent("/", "leave", func(s socketio.Conn, matchID string) {
		s.Leave(matchID)
		subs.cancelMatch(s.ID(), matchID)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", s.ID(), reason)
		subs.cancelConn(s.ID())
	})

	return server
}
