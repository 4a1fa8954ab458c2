package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/salaryboard/internal/table"
)

// handleTableSocket carries click events from the page's delegated listener.
// Each event that changes the view is answered with the new fragment;
// lookup misses, bad columns and unknown targets get no reply.
func (s *Server) handleTableSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	log := s.logger.With(zap.String("conn_id", uuid.NewString()))
	log.Info("table socket connected", zap.String("remote", r.RemoteAddr))
	defer log.Info("table socket closed")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var ev table.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Debug("ignoring malformed event", zap.Error(err))
			continue
		}

		frag, changed, err := s.board.View.Click(ev)
		if err != nil {
			log.Debug("ignoring event", zap.String("target", string(ev.Target)), zap.Error(err))
			continue
		}
		if !changed {
			continue
		}

		if err := conn.WriteJSON(frag); err != nil {
			log.Warn("websocket write", zap.Error(err))
			return
		}
	}
}
