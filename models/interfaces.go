package models

import "context"

// Completer answers a question grounded on an EDA summary. The returned
// text is the model output verbatim.
type Completer interface {
	Answer(ctx context.Context, question, summary string) (string, error)
}
