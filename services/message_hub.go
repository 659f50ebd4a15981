package services

import (
	"sync"

	"sponsorlink_server/models"
)

// messageHub fans message-log snapshots out to per-match subscribers. Each
// subscriber channel has capacity one and is written latest-wins, so delivery
// never blocks an append and a lagging consumer sees coalesced updates.
type messageHub struct {
	mu   sync.Mutex
	subs map[string]map[chan []models.Message]struct{}
}

func newMessageHub() *messageHub {
	return &messageHub{subs: make(map[string]map[chan []models.Message]struct{})}
}

func (h *messageHub) subscribe(matchID string) (<-chan []models.Message, func()) {
	ch := make(chan []models.Message, 1)

	h.mu.Lock()
	if h.subs[matchID] == nil {
		h.subs[matchID] = make(map[chan []models.Message]struct{})
	}
	h.subs[matchID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[matchID], ch)
			if len(h.subs[matchID]) == 0 {
				delete(h.subs, matchID)
			}
			close(ch)
		})
	}
	return ch, cancel
}

func (h *messageHub) publish(matchID string, snapshot []models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[matchID] {
		// Drop the stale snapshot if the consumer has not drained it yet.
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}
