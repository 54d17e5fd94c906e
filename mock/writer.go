package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of docgrab.ResultWriter.
type ResultWriter struct {
	WriteResultSetFn func(ctx context.Context, set *docgrab.ResultSet) error
}

func (w *ResultWriter) WriteResultSet(ctx context.Context, set *docgrab.ResultSet) error {
	return w.WriteResultSetFn(ctx, set)
}
