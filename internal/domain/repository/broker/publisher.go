package broker

import "context"

// Publisher hands a committed capture off to the analysis pipeline.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}
