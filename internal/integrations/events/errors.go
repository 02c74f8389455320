package events

import "errors"

var (
	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("events: failed to publish")
)
