// Package dbtx lets gorm repositories join a transaction opened on the
// shared *sql.DB by a service.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a context-bound session that runs on tx when it is non-nil.
func Bind(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	q := db.WithContext(ctx)
	if tx != nil {
		q.Statement.ConnPool = tx
	}
	return q
}
