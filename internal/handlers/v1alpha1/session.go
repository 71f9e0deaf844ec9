package v1alpha1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	api "github.com/PratikS7412/Tower-Retrival-Time/api/v1alpha1"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/handlers/v1alpha1/mappers"
	"github.com/PratikS7412/Tower-Retrival-Time/internal/session"
	"github.com/PratikS7412/Tower-Retrival-Time/pkg/log"
)

// (GET /api/v1/ws)
//
// Every connection owns one session. The current result is pushed right
// after the upgrade and again after each accepted message. Malformed
// messages get an api.Error reply and leave the session untouched.
func (h *ServiceHandler) LiveSession(w http.ResponseWriter, r *http.Request) {
	query := estimationQuery{Model: r.URL.Query().Get("model")}
	if err := h.validator.Struct(query); err != nil {
		replyError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already wrote the error response
		return
	}
	defer conn.Close()

	// the request context is cancelled once the handler returns, so the
	// session keeps its own, carrying the request id for logging
	ctx := context.WithoutCancel(r.Context())
	s := session.New(ctx, sessionCalculator{srv: h.retrievalSrv, model: h.model(query.Model)})

	tracer := log.NewDebugLogger("session_handler").
		WithContext(ctx).
		Operation("live_session").
		WithUUID("session_id", s.ID()).
		Build()
	tracer.Step("connected").WithString("remote_addr", conn.RemoteAddr().String()).Log()

	if err := conn.WriteJSON(s.Result()); err != nil {
		tracer.Error(err).Log()
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				tracer.Success().Log()
			} else {
				tracer.Error(err).Log()
			}
			return
		}

		var reply interface{}
		var msg api.SessionMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			reply = errorBody(ctx, "invalid message: "+err.Error())
		} else {
			reply = h.handleMessage(ctx, s, msg)
		}
		if err := conn.WriteJSON(reply); err != nil {
			tracer.Error(err).Log()
			return
		}
	}
}

// handleMessage applies msg to s and returns the fresh result, or an
// api.Error when msg is rejected.
func (h *ServiceHandler) handleMessage(ctx context.Context, s *session.Session, msg api.SessionMessage) interface{} {
	if msg.IsEmpty() {
		return errorBody(ctx, "empty message: expected field, fields or reset")
	}
	if err := h.validator.Struct(msg); err != nil {
		return errorBody(ctx, err.Error())
	}
	for name := range msg.Fields {
		if err := h.validator.Struct(api.SessionMessage{Field: name}); err != nil {
			return errorBody(ctx, err.Error())
		}
	}

	if msg.Reset {
		s.Reset(ctx)
	}
	changes := mappers.SessionMessageToRaw(msg)
	if len(changes) == 0 {
		return s.Result()
	}
	return s.Apply(ctx, changes)
}
