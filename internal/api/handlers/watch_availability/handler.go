package watch_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
)

const (
	msgInvalidStudioID = "invalid studio ID"
	msgStudioNotFound  = "studio not found"
	msgInvalidMessage  = "invalid message"
	msgUnknownType     = "unknown message type"

	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	catalog    CatalogService
	newSession SessionFactory
	logger     Logger
}

func NewHandler(catalog CatalogService, newSession SessionFactory, logger Logger) *Handler {
	return &Handler{
		catalog:    catalog,
		newSession: newSession,
		logger:     logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/availability/ws?date=
// Одно соединение = одна открытая форма бронирования.
// Сессия закрывается при разрыве соединения или после успешной отправки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studioID, ok := handlers.PathInt64(r, "studioId")
	if !ok {
		h.logger.Warn("WS /studios/{id}/availability - Invalid studio ID")
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	studio, err := h.catalog.GetByID(studioID)
	if err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			h.logger.Warn("WS /studios/{id}/availability - Studio not found: studio_id=%d", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)
			return
		}
		h.logger.Error("WS /studios/{id}/availability - Failed to get studio: studio_id=%d, error=%v", studioID, err)
		handlers.RespondInternalError(w)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WS /studios/{id}/availability - Upgrade failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	// Контекст соединения, а не запроса: сервер может отменить r.Context() после Upgrade
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := h.newSession(studio)
	defer sess.Close()

	updates, unsubscribe := sess.Subscribe()
	defer unsubscribe()

	outgoing := make(chan ServerEvent, 8)
	writerDone := make(chan struct{})
	go h.writeLoop(conn, updates, outgoing, writerDone)

	if date := r.URL.Query().Get("date"); date != "" {
		if err := sess.SetDate(ctx, date); err != nil {
			h.logger.Error("WS /studios/{id}/availability - Failed to load slots: studio_id=%d, error=%v", studioID, err)
		}
	}
	if err := sess.Start(ctx); err != nil {
		h.logger.Error("WS /studios/{id}/availability - Failed to start session: %v", err)
		return
	}

	h.logger.Info("WS /studios/{id}/availability - Session opened: studio_id=%d", studioID)
	h.readLoop(ctx, conn, sess, outgoing, writerDone)
	h.logger.Info("WS /studios/{id}/availability - Session closed: studio_id=%d", studioID)
}

func (h *Handler) readLoop(
	ctx context.Context,
	conn *websocket.Conn,
	sess *session.Session,
	outgoing chan<- ServerEvent,
	writerDone <-chan struct{},
) {
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	send := func(event ServerEvent) bool {
		select {
		case outgoing <- event:
			return true
		case <-writerDone:
			return false
		}
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WS /studios/{id}/availability - Read error: %v", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			if !send(ServerEvent{Type: EventError, Error: msgInvalidMessage}) {
				return
			}
			continue
		}

		switch msg.Type {
		case MsgSetDate:
			err = sess.SetDate(ctx, msg.Date)
		case MsgSetTime:
			err = sess.SetTime(msg.Time)
		case MsgRefresh:
			err = sess.Refresh(ctx)
		case MsgSubmit:
			_, err = sess.Submit(ctx, session.Contact{UserName: msg.UserName, UserEmail: msg.UserEmail})
			// Ошибки формы уже отражены в снимке сессии
			if errors.Is(err, domain.ErrValidation) {
				err = nil
			}
		case MsgPing:
			if !send(ServerEvent{Type: EventPong}) {
				return
			}
			continue
		default:
			if !send(ServerEvent{Type: EventError, Error: msgUnknownType}) {
				return
			}
			continue
		}

		if errors.Is(err, session.ErrClosed) {
			return
		}
		if err != nil {
			h.logger.Warn("WS /studios/{id}/availability - %s failed: %v", msg.Type, err)
			if !send(ServerEvent{Type: EventError, Error: err.Error()}) {
				return
			}
		}
		if sess.Snapshot().Closed {
			// Успешная отправка: дожидаемся финального снимка и закрываем соединение
			<-writerDone
			return
		}
	}
}

// writeLoop единственный писатель в соединение
func (h *Handler) writeLoop(
	conn *websocket.Conn,
	updates <-chan session.Snapshot,
	outgoing <-chan ServerEvent,
	done chan<- struct{},
) {
	defer close(done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(v interface{}) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(v) == nil
	}

	for {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(writeWait))
				return
			}
			if !write(ServerEvent{Type: EventSnapshot, Snapshot: &snapshot}) {
				return
			}
		case event := <-outgoing:
			if !write(event) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
