// Package llm wraps the text generation backends behind one interface.
// Model identity and generation parameters are fixed at construction;
// nothing here is tunable per request.
package llm

import "context"

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}
