package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler отвечает 503 во время остановки и когда недоступно хранилище.
type Handler struct {
	isShuttingDown *atomic.Bool
	pingers        []Pinger
}

func New(isShuttingDown *atomic.Bool, pingers ...Pinger) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		pingers:        pingers,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	for _, p := range h.pingers {
		err := p.Ping(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
