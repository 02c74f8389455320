package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/geo"
)

// Client клиент сервиса IP-геолокации
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геолокации
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Locate определяет координаты по IP клиента. Пустой IP означает адрес самого сервиса.
// Все ошибки возвращаются как *LocationError.
func (c *Client) Locate(ctx context.Context, clientIP string) (*domain.Coordinates, error) {
	if c.baseURL == "" {
		return nil, ErrNotSupported
	}

	endpoint := fmt.Sprintf("%s/json/%s?fields=status,message,lat,lon", c.baseURL, url.PathEscape(clientIP))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewError(KindUnknown, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, NewError(KindTimeout, err)
		}
		return nil, NewError(KindPositionUnavailable, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, NewError(KindPermissionDenied, fmt.Errorf("status %d", resp.StatusCode))
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return nil, NewError(KindPositionUnavailable, fmt.Errorf("status %d", resp.StatusCode))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewError(KindUnknown, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
	}

	var parsed lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, NewError(KindUnknown, fmt.Errorf("failed to decode response: %w", err))
	}
	if parsed.Status != "success" {
		c.log.Warn("Locate: lookup for ip=%q failed: %s", clientIP, parsed.Message)
		return nil, NewError(KindPositionUnavailable, fmt.Errorf("lookup failed: %s", parsed.Message))
	}
	if !geo.IsValidCoordinate(parsed.Lat, parsed.Lon) {
		return nil, NewError(KindPositionUnavailable, fmt.Errorf("invalid coordinates %f,%f", parsed.Lat, parsed.Lon))
	}

	return &domain.Coordinates{Latitude: parsed.Lat, Longitude: parsed.Lon}, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
