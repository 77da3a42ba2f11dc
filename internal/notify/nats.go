package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/nurpe/hr-contracts/internal/model"
)

// Requester is the part of *nats.Conn the notifier needs.
type Requester interface {
	RequestMsgWithContext(ctx context.Context, msg *nats.Msg) (*nats.Msg, error)
}

type natsReply struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// NATSNotifier delivers messages through request-reply on a single subject.
type NATSNotifier struct {
	conn    Requester
	subject string
	timeout time.Duration
}

func NewNATS(conn Requester, subject string, timeout time.Duration) *NATSNotifier {
	return &NATSNotifier{conn: conn, subject: subject, timeout: timeout}
}

func (n *NATSNotifier) Send(ctx context.Context, token string, msg model.Message) (string, error) {
	dto := toDTO(msg)
	fromHR := msg.FromHR
	dto.FromHR = &fromHR
	data, err := json.Marshal(dto)
	if err != nil {
		return "", err
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	request := nats.NewMsg(n.subject)
	request.Data = data
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	reply, err := n.conn.RequestMsgWithContext(ctx, request)
	if err != nil {
		return "", fmt.Errorf("nats request %s: %w", n.subject, err)
	}

	var out natsReply
	if err := json.Unmarshal(reply.Data, &out); err != nil {
		return "", fmt.Errorf("decode nats reply: %w", err)
	}
	if out.Error != "" {
		return "", errors.New(out.Error)
	}
	if out.ID == "" {
		return "", errors.New("nats reply carries no message id")
	}
	return out.ID, nil
}

// Connect dials NATS, retrying until timeout elapses.
func Connect(url string, timeout time.Duration) (*nats.Conn, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		conn, err := nats.Connect(url, nats.Name("contract-service"))
		if err == nil {
			return conn, nil
		}
		lastErr = err
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect nats timeout after %s: %w", timeout, lastErr)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

// Close drains conn before closing it.
func Close(conn *nats.Conn) {
	if conn == nil {
		return
	}
	_ = conn.Drain()
	conn.Close()
}
