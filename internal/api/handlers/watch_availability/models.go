package watch_availability

import "github.com/m04kA/SMC-StudioBooking/internal/session"

// Типы сообщений клиента
const (
	MsgSetDate = "setDate"
	MsgSetTime = "setTime"
	MsgRefresh = "refresh"
	MsgSubmit  = "submit"
	MsgPing    = "ping"
)

// Типы сообщений сервера
const (
	EventSnapshot = "snapshot"
	EventError    = "error"
	EventPong     = "pong"
)

// ClientMessage сообщение от клиента
type ClientMessage struct {
	Type      string `json:"type"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
}

// ServerEvent сообщение клиенту
type ServerEvent struct {
	Type     string            `json:"type"`
	Snapshot *session.Snapshot `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}
