package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const presentonServiceName = "presenton"

// presentonInstructions - промпт для оформления презентации,
// %s заменяется на язык презентации
const presentonInstructions = "Создай красивую презентацию на %s языке " +
	"с чётким планом, минимум текста на слайдах, " +
	"оформлением с красивыми градиентными фонами и картинками. " +
	"Используй структуру: введение, основные пункты, вывод. " +
	"Добавь красивые background, а не просто белый фон." +
	"Добавь различные красивые символы."

// Presentation - ссылки на готовую презентацию.
// Имена полей такие, как их возвращает Presenton API.
type Presentation struct {
	Path     string `json:"path"`
	EditPath string `json:"edit_path"`
}

type presentationRequest struct {
	Content      string `json:"content"`
	NSlides      int    `json:"n_slides"`
	Language     string `json:"language"`
	Template     string `json:"template"`
	ExportAs     string `json:"export_as"`
	Instructions string `json:"instructions"`
}

// SubmitPresentationJob отправляет контент в Presenton и возвращает
// ссылки на скачивание и онлайн-редактирование. Без ретраев.
func (c *Client) SubmitPresentationJob(ctx context.Context, content string, nSlides int, language string) (*Presentation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(presentationRequest{
		Content:      content,
		NSlides:      nSlides,
		Language:     language,
		Template:     "general",
		ExportAs:     "pptx",
		Instructions: fmt.Sprintf(presentonInstructions, language),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal presentation request: %w", err)
	}

	url := c.presentonBase + "/api/v1/ppt/presentation/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build presentation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.presentonKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Submitting presentation job",
		zap.Int("n_slides", nSlides),
		zap.String("language", language))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(presentonServiceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RemoteServiceError{
			Service: presentonServiceName,
			Status:  resp.StatusCode,
			Body:    truncateBody(body),
		}
	}

	var result Presentation
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &TransportError{Service: presentonServiceName, Err: fmt.Errorf("decode response: %w", err)}
	}

	return &result, nil
}
