package database

import "context"

// TxManager scopes a sequence of repository writes to a single transaction:
// fn commits as a whole or rolls back on any error or panic. Repository calls
// made with the context passed to fn join the transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
