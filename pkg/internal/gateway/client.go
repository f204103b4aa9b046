package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/linkup-social/linkup/pkg/internal/session"
)

// Envelope is the backend's uniform response shape. Data is left raw for the
// per-resource clients to decode. The comment listing carries the viewer and
// author ids next to the standard fields, so they live here too.
type Envelope struct {
	Status   string              `json:"status"`
	Data     jsoniter.RawMessage `json:"data"`
	Message  string              `json:"message"`
	UserID   string              `json:"userId"`
	AuthorID string              `json:"authorId"`
}

// APIError is a request the backend itself rejected, either with an error
// status code or a non-success envelope. Transport failures surface as plain
// errors instead.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request rejected with status %d", e.Code)
	}
	return e.Message
}

// Client talks to the backend under one base URL, attaching the session's
// bearer token to every call. It does not retry and does not validate
// response schemas; failures are terminal for the action that issued them.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

func NewClient(sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(viper.GetString("api.base_url"), "/"),
		http:    &http.Client{},
		session: sess,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*Envelope, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	log.Debug().Str("method", method).Str("url", url).Msg("Calling backend...")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to reach backend: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %v", err)
	}

	var envelope Envelope
	if err := jsoniter.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode != fiber.StatusOK {
			return nil, &APIError{Code: resp.StatusCode}
		}
		return nil, fmt.Errorf("unable to parse response JSON: %v", err)
	}

	if resp.StatusCode >= fiber.StatusBadRequest || (envelope.Status != "" && envelope.Status != "success") {
		message := envelope.Message
		if message == "" && len(envelope.Data) > 0 {
			// Some rejections put the text into data instead.
			_ = jsoniter.Unmarshal(envelope.Data, &message)
		}
		return &envelope, &APIError{Code: resp.StatusCode, Message: message}
	}

	return &envelope, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	envelope, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decodeData(envelope, path, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := jsoniter.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	envelope, err := c.do(ctx, method, path, body, fiber.MIMEApplicationJSON)
	if err != nil {
		return err
	}
	return decodeData(envelope, path, out)
}

func decodeData(envelope *Envelope, path string, out any) error {
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := jsoniter.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("unable to decode %s response: %v", path, err)
	}
	return nil
}
