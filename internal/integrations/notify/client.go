package notify

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
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Client клиент для работы с почтовым релеем
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового релея
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendQuote отправляет письмо со сметой через релей
func (c *Client) SendQuote(ctx context.Context, email *QuoteEmail) error {
	url := fmt.Sprintf("%s/internal/emails/quote", c.baseURL)

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	case http.StatusBadRequest:
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil {
			return fmt.Errorf("%w: relay rejected payload: %s", ErrInvalidResponse, errResp.Message)
		}
		return fmt.Errorf("%w: relay rejected payload", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// SendQuoteWithGracefulDegradation отправляет письмо со сметой с graceful degradation.
// При недоступности релея возвращает ErrServiceDegraded: заявка уже сохранена,
// письмо не критично для приёма заказа
func (c *Client) SendQuoteWithGracefulDegradation(ctx context.Context, email *QuoteEmail) error {
	c.log.Info("Sending quote email for postcode=%s", email.Postcode)

	if err := c.SendQuote(ctx, email); err != nil {
		// Письмо не блокирует приём заявки. Повышаем уровень логирования
		// до ERROR, чтобы быстрее заметить проблему с релеем
		c.log.Error("Mail relay unavailable, applying graceful degradation for postcode=%s: %v", email.Postcode, err)
		return fmt.Errorf("%w: postcode=%s, error=%v", ErrServiceDegraded, email.Postcode, err)
	}

	c.log.Info("Successfully sent quote email for postcode=%s", email.Postcode)
	return nil
}
