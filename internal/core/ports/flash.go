package ports

import "context"

// FlashStore holds one-shot user notices between a redirect and the next
// render. Pop returns the stored messages and clears them in one step.
type FlashStore interface {
	Add(ctx context.Context, key, message string) error
	Pop(ctx context.Context, key string) ([]string, error)
}
