package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the identity service that owns user accounts.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type createAccountRequest struct {
	NetID    string `json:"netId"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) CreateAccount(ctx context.Context, token, netID, password, role string) error {
	body, err := json.Marshal(createAccountRequest{NetID: netID, Password: password, Role: role})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/authentication/users/candidate", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	setAuthorization(req, token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return statusError(resp)
	}
	return nil
}

func (c *Client) IsNetIDUnique(ctx context.Context, token, netID string) (bool, error) {
	endpoint := c.BaseURL + "/authentication/users/checkNetIdUnique/" + url.PathEscape(netID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	setAuthorization(req, token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return false, statusError(resp)
	}

	var unique bool
	if err := json.NewDecoder(resp.Body).Decode(&unique); err != nil {
		return false, fmt.Errorf("decode identity response: %w", err)
	}
	return unique, nil
}

func setAuthorization(req *http.Request, token string) {
	if token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func statusError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if text := strings.TrimSpace(string(msg)); text != "" {
		return fmt.Errorf("identity service returned %d: %s", resp.StatusCode, text)
	}
	return fmt.Errorf("identity service returned %d", resp.StatusCode)
}
