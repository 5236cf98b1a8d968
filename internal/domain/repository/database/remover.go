package database

import "context"

// Remover deletes ledger rows by id, independent of blob deletion so
// reconciliation tooling can repair either side.
type Remover interface {
	RemoveByID(ctx context.Context, id string) error
}
