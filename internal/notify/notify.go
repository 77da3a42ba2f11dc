package notify

import (
	"github.com/nurpe/hr-contracts/internal/model"
)

type payloadDTO struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type messageDTO struct {
	To       string       `json:"to"`
	Type     string       `json:"type"`
	Contents string       `json:"contents"`
	Payload  []payloadDTO `json:"payload"`
	FromHR   *bool        `json:"fromHr,omitempty"`
}

func toDTO(msg model.Message) messageDTO {
	payload := make([]payloadDTO, 0, len(msg.Payload))
	for _, p := range msg.Payload {
		payload = append(payload, payloadDTO{Type: p.Type, ID: p.ID})
	}
	return messageDTO{
		To:       msg.To,
		Type:     string(msg.Type),
		Contents: msg.Contents,
		Payload:  payload,
	}
}
