package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageContractPropose          MessageType = "contract-propose"
	MessageContractApprove          MessageType = "contract-approve"
	MessageContractTerminate        MessageType = "contract-terminate"
	MessageContractTerminateRequest MessageType = "contract-terminate-request"
	MessageDocumentRequest          MessageType = "document-request"
	MessageLeaveRequest             MessageType = "leave-request"
	MessageLeaveApprove             MessageType = "leave-approve"
	MessageOther                    MessageType = "other"
)

// HRTarget addresses every HR employee instead of a single net id.
const HRTarget = "HR"

const (
	PayloadTypeContract  = "contract"
	PayloadTypeSickLeave = "sick"
)

// MessagePayload links a message back to the entity it is about.
type MessagePayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func NewMessagePayload(payloadType string, id uuid.UUID) (MessagePayload, error) {
	payloadType = strings.ToLower(strings.TrimSpace(payloadType))
	switch payloadType {
	case PayloadTypeContract, PayloadTypeSickLeave:
	default:
		return MessagePayload{}, fmt.Errorf("%w: message payload of type %q not supported", ErrInvalidInput, payloadType)
	}
	return MessagePayload{Type: payloadType, ID: id.String()}, nil
}

type Message struct {
	To       string
	Type     MessageType
	Contents string
	Payload  []MessagePayload
	FromHR   bool
}
