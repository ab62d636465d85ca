package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client - общий HTTP клиент для обоих внешних сервисов.
// Один пул соединений и одна политика таймаута на процесс.
type Client struct {
	http          *http.Client
	timeout       time.Duration
	ingestBase    string
	presentonBase string
	presentonKey  string
	logger        *zap.Logger
}

// New создаёт клиент внешних сервисов. timeoutSeconds применяется
// как дедлайн каждого запроса (connect + read).
func New(ingestBase, presentonBase, presentonKey string, timeoutSeconds int, logger *zap.Logger) *Client {
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout:       time.Duration(timeoutSeconds) * time.Second,
		ingestBase:    ingestBase,
		presentonBase: presentonBase,
		presentonKey:  presentonKey,
		logger:        logger,
	}
}

// Close освобождает пул соединений, вызывается при остановке процесса
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
