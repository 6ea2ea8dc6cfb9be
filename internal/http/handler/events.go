package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleEvents streams session events over a websocket until the client goes
// away or a newer stream replaces this one.
func (h *WalletHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request
		h.logs.Errorw("failed to upgrade connection",
			"error", err,
			"handler", Events,
			"request_id", requestId)
		return
	}
	defer conn.Close()

	events := h.session.Subscribe()
	defer h.session.Unsubscribe(events)

	closed := make(chan struct{})
	go func() {
		defer close(closed)

		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	h.logs.Infow("event stream opened",
		"handler", Events,
		"request_id", requestId)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replaced by a newer stream"),
					time.Now().Add(writeWait))
				h.logs.Infow("event stream replaced",
					"handler", Events,
					"request_id", requestId)
				return
			}

			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				h.logs.Errorw("failed to write event",
					"error", err,
					"handler", Events,
					"request_id", requestId)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-closed:
			h.logs.Infow("event stream closed",
				"handler", Events,
				"request_id", requestId)
			return
		}
	}
}
