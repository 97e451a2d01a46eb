package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/nftmx/node/pubsub"
)

const (
	pingPeriod = 10 * time.Second
	pongWait   = 15 * time.Second
	writeWait  = 5 * time.Second
)

// Subscribable streams the results of delivered commands
type Subscribable interface {
	Subscribe() (pubsub.Subscriber, error)
}

// RegisterEventRoutes registers a websocket route pushing every committed
// TxResult as a JSON text message
func RegisterEventRoutes(s Subscribable, r *mux.Router, ns string, logger log.Logger) {
	r.HandleFunc(fmt.Sprintf("/%s/events", ns), eventsHandler(s, logger)).Methods("GET")
}

func eventsHandler(s Subscribable, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := s.Subscribe()
		if err != nil {
			writeError(w, err)
			return
		}
		defer sub.Close()

		upgrader := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		}

		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// At this point the connection either has a response sent already
			// or it has been closed
			return
		}

		wsEventWriter(r.Context(), ws, sub, logger)
	}
}

func wsEventWriter(ctx context.Context, ws *websocket.Conn, sub pubsub.Subscriber, logger log.Logger) {
	pingTicker := time.NewTicker(pingPeriod)
	cctx, cancel := context.WithCancel(ctx)
	defer func() {
		pingTicker.Stop()
		cancel()
		_ = ws.Close()
	}()

	if err := wsSetupPongHandler(ws, cancel); err != nil {
		return
	}

	sendClose := func() {
		_ = ws.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}

	for {
		select {
		case <-cctx.Done():
			sendClose()
			return
		case <-sub.Done():
			sendClose()
			return
		case ev := <-sub.Events():
			if err := ws.WriteJSON(ev); err != nil {
				logger.Debug("event stream write failed", "err", err)
				return
			}
		case <-pingTicker.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// wsSetupPongHandler keeps the read side alive while the peer answers pings
// and cancels the stream once the peer goes away
func wsSetupPongHandler(ws *websocket.Conn, cancel func()) error {
	if err := ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return err
	}

	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		defer cancel()

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
