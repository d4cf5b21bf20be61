package events

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"relay/internal/handlers/rest/response"
	"relay/internal/pkg/eventcodec"
	"relay/internal/pkg/hub"
	"relay/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(*http.Request) bool {
		return true
	},
}

// Handler - поток событий пользователя: личный канал и каналы всех его
// доставок. Входящие сообщения клиента не обрабатываются, только ping/pong.
type Handler struct {
	log handlerLogger
	hub Hub
}

func New(log handlerLogger, hub Hub) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ws.events")),
		hub: hub,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		response.BadRequest(w, h.log, "user_id is required")
		return
	}

	// подписка до upgrade: после рукопожатия клиент не теряет ни одного события
	sub := h.hub.Connect(userID)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Close()
		h.log.Warn("upgrade websocket",
			logger.NewField("user_id", userID),
			logger.NewField("error", err),
		)
		return
	}

	connLog := h.log.With(logger.NewField("user_id", userID))
	connLog.Info("websocket connected")
	ConnectionsActive.Inc()

	done := make(chan struct{})
	go func() {
		defer close(done)
		writeLoop(conn, sub, connLog)
	}()

	readLoop(conn, connLog)
	sub.Close()
	<-done

	ConnectionsActive.Dec()
	connLog.Info("websocket disconnected")
}

// readLoop держит соединение живым и замечает закрытие со стороны клиента.
func readLoop(conn *websocket.Conn, log handlerLogger) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", logger.NewField("error", err))
			}
			return
		}
	}
}

// writeLoop закрывает соединение при выходе, чем завершает и readLoop.
func writeLoop(conn *websocket.Conn, sub *hub.Subscription, log handlerLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			err := conn.WriteJSON(eventcodec.Encode(event))
			if err != nil {
				log.Warn("websocket write",
					logger.NewField("event", event.Type.String()),
					logger.NewField("error", err),
				)
				return
			}
			MessagesSentTotal.WithLabelValues(event.Type.String()).Inc()

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := conn.WriteMessage(websocket.PingMessage, nil)
			if err != nil {
				return
			}
		}
	}
}
