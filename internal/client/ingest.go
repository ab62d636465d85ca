package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

const ingestServiceName = "ingest"

// IngestResult - транскрипт и резюме, полученные от сервиса транскрибации
type IngestResult struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

// SubmitIngestJob отправляет ссылку на медиа в сервис транскрибации.
// sessionID формирует вызывающий код, сервис использует его для дедупликации.
// Без ретраев: любая ошибка сразу возвращается вызывающему.
func (c *Client) SubmitIngestJob(ctx context.Context, sourceURL, sessionID string) (*IngestResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("source_url", sourceURL); err != nil {
		return nil, fmt.Errorf("write form field: %w", err)
	}
	if err := form.WriteField("do_summary", "true"); err != nil {
		return nil, fmt.Errorf("write form field: %w", err)
	}
	if err := form.WriteField("session_id", sessionID); err != nil {
		return nil, fmt.Errorf("write form field: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	url := c.ingestBase + "/transcribe"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("build ingest request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	c.logger.Info("Submitting ingest job",
		zap.String("session_id", sessionID))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(ingestServiceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RemoteServiceError{
			Service: ingestServiceName,
			Status:  resp.StatusCode,
			Body:    truncateBody(body),
		}
	}

	var result IngestResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &TransportError{Service: ingestServiceName, Err: fmt.Errorf("decode response: %w", err)}
	}

	return &result, nil
}
