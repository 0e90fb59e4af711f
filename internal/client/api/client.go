package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/offlinekit/recordsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного CRUD API записей.
type ClientAPI interface {
	// CreateRecord создает запись на сервере
	CreateRecord(ctx context.Context, accessToken string, record api.Record) (*api.Record, error)

	// UpdateRecord применяет частичное обновление записи
	UpdateRecord(ctx context.Context, accessToken, id string, req api.UpdateRecordRequest) (*api.Record, error)

	// DeleteRecord удаляет запись на сервере
	DeleteRecord(ctx context.Context, accessToken, id string) error

	// ListRecords возвращает все записи пользователя
	ListRecords(ctx context.Context, accessToken string) ([]api.Record, error)

	// Health проверяет доступность сервера
	Health(ctx context.Context) error
}

// Error представляет отказ уровня приложения: сервер ответил, но отверг
// запрос. Отличим от транспортной ошибки (см. IsNetworkError), для которой
// ответа не было вовсе.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsNetworkError возвращает true, если запрос не достиг сервера:
// таймаут, connection refused, ошибка DNS. Такие ошибки всегда
// ретраятся; отказы приложения (*Error) обрабатываются отдельно.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// Client представляет HTTP клиент для взаимодействия с сервером записей
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateRecord создает запись на сервере
func (c *Client) CreateRecord(ctx context.Context, accessToken string, record api.Record) (*api.Record, error) {
	var resp api.Record
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/records", accessToken, record, &resp)
	if err != nil {
		return nil, fmt.Errorf("create record request failed: %w", err)
	}
	return &resp, nil
}

// UpdateRecord применяет частичное обновление записи
func (c *Client) UpdateRecord(ctx context.Context, accessToken, id string, req api.UpdateRecordRequest) (*api.Record, error) {
	var resp api.Record
	url := fmt.Sprintf("/api/v1/records/%s", id)
	err := c.doRequest(ctx, http.MethodPatch, url, accessToken, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update record request failed: %w", err)
	}
	return &resp, nil
}

// DeleteRecord удаляет запись на сервере
func (c *Client) DeleteRecord(ctx context.Context, accessToken, id string) error {
	url := fmt.Sprintf("/api/v1/records/%s", id)
	if err := c.doRequest(ctx, http.MethodDelete, url, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete record request failed: %w", err)
	}
	return nil
}

// ListRecords возвращает все записи пользователя
func (c *Client) ListRecords(ctx context.Context, accessToken string) ([]api.Record, error) {
	var resp api.ListRecordsResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/records", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list records request failed: %w", err)
	}
	return resp.Records, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/health", "", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := string(respBody)
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			message = errResp.Error
			if errResp.Message != "" {
				message = errResp.Error + ": " + errResp.Message
			}
		}
		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
