// Package postgres - хранилище relay на PostgreSQL.
// Блокировки строк берутся через SELECT ... FOR UPDATE и держатся до конца
// транзакции, открытой через pkg/tx.
package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

type scanner interface {
	Scan(dest ...any) error
}
