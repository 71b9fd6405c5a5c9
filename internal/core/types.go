package core

const (
	AppName    = "People Team AI Assistant"
	AppVersion = "0.1.0"

	// Display names used in transcripts and the chat view.
	UserDisplayName      = "You"
	AssistantDisplayName = "People Team AI"

	// FallbackAnswer is recorded verbatim when the endpoint returns a
	// well-formed response without an answer.
	FallbackAnswer = "No answer returned."

	// TimestampLayout is the wire and display format for message timestamps.
	TimestampLayout = "2006-01-02 15:04:05"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry of the conversation. Role and Content are
// required; Timestamp is empty when unknown.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// DisplayName maps a role to the label used in rendered transcripts.
func DisplayName(role string) string {
	switch role {
	case RoleUser:
		return UserDisplayName
	case RoleAssistant:
		return AssistantDisplayName
	default:
		return role
	}
}
