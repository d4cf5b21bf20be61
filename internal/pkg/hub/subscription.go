package hub

import (
	"sync"

	"relay/internal/entities"
)

// Subscription - одно подключение пользователя. События личного канала
// и всех каналов доставок пользователя приходят в Events().
type Subscription struct {
	id     uint64
	userID string
	hub    *Hub

	mu     sync.Mutex
	ch     chan entities.Event
	closed bool
}

func (s *Subscription) UserID() string {
	return s.userID
}

func (s *Subscription) Events() <-chan entities.Event {
	return s.ch
}

// Close отключает подписку от хаба и закрывает Events().
func (s *Subscription) Close() {
	s.hub.disconnect(s)
}

// deliver не блокируется: false - буфер полон, событие отброшено.
func (s *Subscription) deliver(event entities.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}

	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
