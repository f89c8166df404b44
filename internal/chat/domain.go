package chat

// Role labels who authored a message. It is an open string: values other
// than the constants below are accepted as-is.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single chat turn.
type Message struct {
	// Role is who sent the message, e.g. "user" or "assistant".
	Role Role `json:"role"`
	// Content is the text of the message.
	Content string `json:"content"`
}

// ToolPayload is an opaque tool call or tool result. Its keys are not
// interpreted by this service.
type ToolPayload map[string]any

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Messages  []Message     `json:"messages"`
	ToolCalls []ToolPayload `json:"tool_calls,omitempty"`
}

// ChatResponse is what the chat endpoint sends back.
// ToolResults is always encoded, as null when there are none.
type ChatResponse struct {
	Response    string        `json:"response"`
	ToolResults []ToolPayload `json:"tool_results"`
}
