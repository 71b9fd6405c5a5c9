package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
)

// State tracks where the session is within a turn.
type State int

const (
	StateEmpty State = iota
	StateAwaitingReply
	StateIdle
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateAwaitingReply:
		return "awaiting reply"
	case StateIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Session is the conversation store for one interactive session: an
// ordered, append-only message buffer, optionally seeded with a single
// system message that always sits at index 0.
type Session struct {
	id       string
	seed     *core.Message
	messages []core.Message
	state    State

	onChange func()
	now      func() time.Time
}

// New returns a session seeded with the given system message. A nil seed
// starts the session empty.
func New(seed *core.Message) *Session {
	s := &Session{
		id:   uuid.NewString(),
		seed: seed,
		now:  time.Now,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.messages = s.messages[:0]
	if s.seed != nil {
		s.messages = append(s.messages, *s.seed)
	}
	s.state = StateEmpty
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	return s.state
}

// OnChange registers the transport's re-render hook, fired after every
// append and clear.
func (s *Session) OnChange(fn func()) {
	s.onChange = fn
}

// Append adds a message to the end of the buffer. Role and content must be
// non-empty; a second system message is rejected.
func (s *Session) Append(msg core.Message) error {
	if msg.Role == "" || msg.Content == "" {
		return fmt.Errorf("message requires a role and content")
	}
	if msg.Role == core.RoleSystem {
		return fmt.Errorf("system message is fixed at session start")
	}

	s.messages = append(s.messages, msg)

	switch msg.Role {
	case core.RoleUser:
		s.state = StateAwaitingReply
	case core.RoleAssistant:
		s.state = StateIdle
	}

	s.notify()
	return nil
}

// AppendUser stamps and appends a user question.
func (s *Session) AppendUser(content string) error {
	return s.Append(core.Message{
		Role:      core.RoleUser,
		Content:   content,
		Timestamp: s.now().Format(core.TimestampLayout),
	})
}

// AppendAssistant stamps and appends an assistant answer. Answers arriving
// already stamped by the client keep their timestamp.
func (s *Session) AppendAssistant(msg core.Message) error {
	msg.Role = core.RoleAssistant
	if msg.Timestamp == "" {
		msg.Timestamp = s.now().Format(core.TimestampLayout)
	}
	return s.Append(msg)
}

// Settle returns the session to idle after a failed turn. The pending user
// question stays in the buffer; the user may simply ask again.
func (s *Session) Settle() {
	if s.state == StateAwaitingReply {
		s.state = StateIdle
	}
}

// Clear resets the store to its initial state. Idempotent, never fails.
func (s *Session) Clear() {
	s.reset()
	s.notify()
}

// Snapshot returns the full ordered sequence, system message included, for
// building the request payload.
func (s *Session) Snapshot() []core.Message {
	out := make([]core.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Visible returns the ordered sequence without the system message, for
// rendering and export.
func (s *Session) Visible() []core.Message {
	out := make([]core.Message, 0, len(s.messages))
	for _, m := range s.messages {
		if m.Role == core.RoleSystem {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *Session) Len() int {
	return len(s.messages)
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
