package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/QuaresmaHarygens/Talkam/client"
)

const notificationPollInterval = 30 * time.Second

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // gateway and browser share an origin in deployment
	},
}

// StreamHandler pushes the unread notification feed to the browser over a
// websocket. The remote API has no push channel, so the gateway bridges
// poll to push: it polls upstream on an interval and writes the feed to the
// socket whenever the poll succeeds.
func (n Notifications) StreamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "error", err)
		return
	}
	go n.streamLoop(conn)
}

func (n Notifications) streamLoop(conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(notificationPollInterval)
	defer ticker.Stop()

	unread := false
	params := client.NotificationParams{Read: &unread}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		notifications, err := n.API.Notifications(ctx, params)
		cancel()
		if err != nil {
			zap.S().Debugw("notification poll failed", "error", err)
		} else if err := conn.WriteJSON(notifications); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
