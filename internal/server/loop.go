package server

import "context"

// Loop is the scoreboard's long-running render loop.
type Loop interface {
	Run(ctx context.Context) error
}
