package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/relaytodo/internal/tracing"
)

// UnitOfWork implements domain.UnitOfWork with a database transaction.
type UnitOfWork struct {
	db     *sql.DB
	tx     *sql.Tx
	viewer domain.User
	logger *log.Logger
}

// NewUnitOfWork creates a UnitOfWork. Outside Execute, repositories run directly on db.
func NewUnitOfWork(db *sql.DB, viewer domain.User, logger *log.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:     db,
		viewer: viewer,
		logger: logger,
	}
}

// Todo returns the todo repository bound to the current transaction, if any.
func (u *UnitOfWork) Todo() domain.TodoRepository {
	if u.tx != nil {
		return NewTodoRepository(u.tx, u.viewer)
	}
	return NewTodoRepository(u.db, u.viewer)
}

// Outbox returns the outbox repository bound to the current transaction, if any.
func (u *UnitOfWork) Outbox() domain.OutboxRepository {
	if u.tx != nil {
		return NewOutboxRepository(u.tx)
	}
	return NewOutboxRepository(u.db)
}

// Execute runs fn inside a transaction, committing when fn succeeds and rolling back otherwise.
// Nested calls join the outer transaction.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}

	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	tx, err := u.db.BeginTx(spanCtx, nil)
	if tracing.RecordErrorAndStatus(span, err) {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			u.logger.Printf("UnitOfWork: error rolling back transaction: %v", err)
		}
	}()

	err = fn(&UnitOfWork{db: u.db, tx: tx, viewer: u.viewer, logger: u.logger})
	if tracing.RecordErrorAndStatus(span, err) {
		return err
	}

	err = tx.Commit()
	if tracing.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}
