package chat

//go:generate mockgen -destination=./service_mock_test.go -package=chat -source=service.go Service

import (
	"context"
)

// echoPrefix marks a reply as an echo of the caller's own message.
const echoPrefix = "Echo: "

// Service defines the business logic behind the chat endpoint.
type Service interface {
	// ProcessChat answers the last message of the conversation.
	ProcessChat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// service is the concrete implementation of the Service interface.
// It is a placeholder: no model is called and tool calls are ignored.
type service struct{}

// NewService is the constructor for the chat service.
func NewService() Service {
	return &service{}
}

// ProcessChat echoes the content of the last message back to the caller.
func (s *service) ProcessChat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, newError(ErrorInvalidInput, "No messages provided", nil)
	}

	last := req.Messages[len(req.Messages)-1]

	return &ChatResponse{
		Response:    echoPrefix + last.Content,
		ToolResults: nil,
	}, nil
}
