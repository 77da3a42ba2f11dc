package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nurpe/hr-contracts/internal/model"
)

// HTTPNotifier posts messages to the messaging service REST API.
type HTTPNotifier struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTP(baseURL string, timeout time.Duration) *HTTPNotifier {
	return &HTTPNotifier{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Send returns the id the messaging service assigned to the message.
func (n *HTTPNotifier) Send(ctx context.Context, token string, msg model.Message) (string, error) {
	body, err := json.Marshal(toDTO(msg))
	if err != nil {
		return "", err
	}

	endpoint := n.BaseURL + "/messages/message/send"
	if msg.FromHR {
		endpoint += "?fromHr"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := n.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("message service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return strings.Trim(strings.TrimSpace(string(raw)), `"`), nil
}
