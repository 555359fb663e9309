package transactor

import "context"

// Transactor represents behavior for transactors
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}

type nopTransactor struct{}

// Nop returns a transactor that runs the function without a surrounding
// transaction, for stores that serialize through single-document writes.
func Nop() Transactor {
	return nopTransactor{}
}

func (nopTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return txFunc(ctx)
}
