package facilityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с FacilityService (каталог площадок и кортов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FacilityService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFacility получает площадку по ID
func (c *Client) GetFacility(ctx context.Context, facilityID int64) (*Facility, error) {
	url := fmt.Sprintf("%s/internal/facilities/%d", c.baseURL, facilityID)

	var facility Facility
	if err := c.getJSON(ctx, url, ErrFacilityNotFound, &facility); err != nil {
		return nil, err
	}

	return &facility, nil
}

// GetCourt получает корт площадки по ID
func (c *Client) GetCourt(ctx context.Context, facilityID, courtID int64) (*Court, error) {
	url := fmt.Sprintf("%s/internal/facilities/%d/courts/%d", c.baseURL, facilityID, courtID)

	var court Court
	if err := c.getJSON(ctx, url, ErrCourtNotFound, &court); err != nil {
		return nil, err
	}

	return &court, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
// notFound возвращается вызывающей стороне при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, notFound error, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
