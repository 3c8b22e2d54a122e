package repositories

import "context"

// UnitOfWork runs a function inside a single database transaction. The
// context passed to fn carries the transaction; repositories participating in
// the same call see the same transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
