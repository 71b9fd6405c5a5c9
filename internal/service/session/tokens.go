package session

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// PromptTokens estimates the token count of the payload the next request
// would carry. The full history is sent on every call by design, so this
// grows without bound over a long session; the number is surfaced in the
// status bar so the user can see it happening.
func (s *Session) PromptTokens() int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})

	total := 0
	for _, m := range s.messages {
		if encoding != nil {
			total += len(encoding.Encode(m.Content, nil, nil))
		} else {
			// Rough chars-per-token heuristic when the encoding
			// cannot be loaded.
			total += (len(m.Content) + 3) / 4
		}
		// Per-message structural overhead.
		total += 4
	}
	return total
}
