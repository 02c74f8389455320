package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// position состояние определения местоположения для одного клиента
type position struct {
	coords     domain.Coordinates
	resolvedAt time.Time
	resolved   bool
	generation uint64 // номер последнего начатого запроса
	pending    int    // запросы к провайдеру в процессе
}

// Locator обёртка над Provider: ограничивает время запроса, переиспользует
// недавний результат и хранит только результат самого нового запроса для ключа.
// Устаревшие записи удаляются, размер кэша ограничен числом клиентов за maxAge.
type Locator struct {
	provider Provider
	timeout  time.Duration
	maxAge   time.Duration
	now      func() time.Time
	log      Logger

	mu        sync.Mutex
	positions map[string]*position
	lastSweep time.Time
}

// NewLocator создает Locator. Нулевые timeout и maxAge заменяются значениями по умолчанию (10 с, 5 мин).
func NewLocator(provider Provider, timeout, maxAge time.Duration, log Logger) *Locator {
	if timeout <= 0 {
		timeout = domain.LocationTimeout
	}
	if maxAge <= 0 {
		maxAge = domain.LocationMaximumAge
	}
	return &Locator{
		provider:  provider,
		timeout:   timeout,
		maxAge:    maxAge,
		now:       time.Now,
		log:       log,
		positions: make(map[string]*position),
	}
}

// Locate возвращает координаты для клиента. Ошибки всегда *LocationError.
func (l *Locator) Locate(ctx context.Context, clientIP string) (*domain.Coordinates, error) {
	l.mu.Lock()
	now := l.now()
	l.sweepLocked(now)

	pos, ok := l.positions[clientIP]
	if ok && l.freshLocked(pos, now) {
		coords := pos.coords
		l.mu.Unlock()
		return &coords, nil
	}
	if !ok {
		pos = &position{}
		l.positions[clientIP] = pos
	}
	pos.generation++
	pos.pending++
	gen := pos.generation
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	coords, err := l.provider.Locate(ctx, clientIP)

	l.mu.Lock()
	pos.pending--
	// Запрос, начатый позже, уже заменил этот
	if err == nil && pos.generation == gen {
		pos.coords = *coords
		pos.resolvedAt = l.now()
		pos.resolved = true
	}
	if l.expiredLocked(pos, l.now()) && l.positions[clientIP] == pos {
		delete(l.positions, clientIP)
	}
	l.mu.Unlock()

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			l.log.Warn("Locate: timed out after %s for ip=%q", l.timeout, clientIP)
			return nil, NewError(KindTimeout, err)
		}
		locErr := AsLocationError(err)
		l.log.Warn("Locate: ip=%q failed with %s: %v", clientIP, locErr.Kind, err)
		return nil, locErr
	}

	return coords, nil
}

func (l *Locator) freshLocked(pos *position, now time.Time) bool {
	return pos.resolved && now.Sub(pos.resolvedAt) <= l.maxAge
}

// expiredLocked запись можно удалить: нет свежего результата и нет запросов в процессе
func (l *Locator) expiredLocked(pos *position, now time.Time) bool {
	return pos.pending == 0 && !l.freshLocked(pos, now)
}

// sweepLocked удаляет устаревшие записи не чаще раза за maxAge
func (l *Locator) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.maxAge {
		return
	}
	l.lastSweep = now
	for ip, pos := range l.positions {
		if l.expiredLocked(pos, now) {
			delete(l.positions, ip)
		}
	}
}

// cached число клиентов с сохранённым состоянием
func (l *Locator) cached() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.positions)
}
