package reminderwebhook

import (
	"bytes"
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

// Client клиент для доставки напоминаний на внешний вебхук.
// Адрес вебхука хранится в настройках приложения и передается на каждый вызов.
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента вебхука
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет одно напоминание. Ошибка доставки не прерывает рассылку,
// вызывающая сторона учитывает ее в итогах.
func (c *Client) Send(ctx context.Context, url string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Reminder webhook unreachable for %s: %v", payload.ClientContact, err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Reminder webhook rejected payload for %s: status=%d body=%s",
			payload.ClientContact, resp.StatusCode, string(respBody))
		return fmt.Errorf("%w: unexpected status code %d", ErrDeliveryFailed, resp.StatusCode)
	}

	return nil
}
