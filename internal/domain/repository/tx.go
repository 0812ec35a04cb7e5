package repository

import "context"

// TxManager runs a function inside a single storage transaction. The
// transactional handle travels on the context; every repository resolves it
// from there. If fn returns an error the whole transaction is rolled back
// and no partial writes survive.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
