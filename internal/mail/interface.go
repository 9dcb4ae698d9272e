package mail

//go:generate mockgen -package=mocks -destination=mocks/mock_transport.go github.com/hackboard/hackboard/internal/mail Transport

import "context"

// Transport delivers email messages. Implementations must be safe for
// concurrent use; the dispatch service sends from multiple goroutines.
type Transport interface {
	// Send delivers one message, honoring the context deadline
	Send(ctx context.Context, msg *Message) error
}
