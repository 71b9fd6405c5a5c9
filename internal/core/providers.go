package core

import "context"

// CompletionProvider turns a full ordered message history into a single
// assistant reply.
type CompletionProvider interface {
	Complete(ctx context.Context, history []Message) (Message, error)
}
