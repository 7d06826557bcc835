// Package workers groups the client's background workers under one
// lifecycle: Run launches each worker against a shared context, Stop shuts
// them down in reverse order and waits for them to finish.
package workers

import "context"

// Worker is one background activity of the client. Run must return once the
// worker is launched; Stop blocks until it has fully shut down. The periodic
// sync job is the canonical implementation.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
