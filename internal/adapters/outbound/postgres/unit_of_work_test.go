package postgres

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/relaytodo/internal/domain"
	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_Execute(t *testing.T) {
	tests := map[string]struct {
		setupMock func(sqlmock.Sqlmock)
		fn        func(ctx context.Context, uow domain.UnitOfWork) error
		expectErr bool
	}{
		"commit": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectQuery(regexp.QuoteMeta("INSERT INTO todos (content) VALUES ($1) RETURNING id")).
					WithArgs("buy milk").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				m.ExpectExec("INSERT INTO outbox_events").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(ctx context.Context, uow domain.UnitOfWork) error {
				id, err := uow.Todo().CreateTodo(ctx, "buy milk")
				if err != nil {
					return err
				}
				event := testEvent
				event.TodoID = id
				return uow.Outbox().RecordEvent(ctx, event)
			},
		},
		"rollback-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(regexp.QuoteMeta("DELETE FROM todos WHERE id = $1")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
			fn: func(ctx context.Context, uow domain.UnitOfWork) error {
				if err := uow.Todo().DeleteTodo(ctx, 1); err != nil {
					return err
				}
				return errors.New("outbox unavailable")
			},
			expectErr: true,
		},
		"nested-execute-joins-transaction": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(regexp.QuoteMeta("DELETE FROM todos WHERE id = $1")).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(ctx context.Context, uow domain.UnitOfWork) error {
				return uow.Execute(ctx, func(inner domain.UnitOfWork) error {
					return inner.Todo().DeleteTodo(ctx, 1)
				})
			},
		},
		"begin-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("db down"))
			},
			fn: func(ctx context.Context, uow domain.UnitOfWork) error {
				return nil
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, m := newMockDB(t)
			tt.setupMock(m)

			uow := NewUnitOfWork(db, testViewer, log.New(io.Discard, "", 0))
			ctx := context.Background()
			err := uow.Execute(ctx, func(u domain.UnitOfWork) error {
				return tt.fn(ctx, u)
			})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitDB_SkipsOtherBackends(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	i := &InitDB{Logger: log.New(io.Discard, "", 0), Backend: "memory"}
	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UnitOfWork]()
	assert.Error(t, err)

	i.Close()
}

func TestExtractSQLOperation(t *testing.T) {
	tests := map[string]struct {
		query              string
		expectedOperations []string
		expectedTables     string
	}{
		"insert": {
			query:              "INSERT INTO todos (content) VALUES ($1) RETURNING id",
			expectedOperations: []string{"INSERT"},
			expectedTables:     "todos",
		},
		"select": {
			query:              "SELECT id, content FROM todos WHERE id = $1",
			expectedOperations: []string{"SELECT"},
			expectedTables:     "todos",
		},
		"delete": {
			query:              "DELETE FROM outbox_events WHERE id = $1",
			expectedOperations: []string{"DELETE"},
			expectedTables:     "outbox_events",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			operations, tables := extractSQLOperation(tt.query)
			assert.Equal(t, tt.expectedOperations, operations)
			assert.Equal(t, tt.expectedTables, tables)
		})
	}
}

func TestInitDB_MissingDBConfig(t *testing.T) {
	t.Cleanup(func() { config.SetGlobalProvider(config.NewEnvVarProvider()) })
	t.Setenv("DB_USER", "")
	require.NoError(t, os.Unsetenv("DB_USER"))
	config.SetGlobalProvider(config.NewEnvVarProvider())

	i := &InitDB{Logger: log.New(io.Discard, "", 0), Backend: BackendName}
	_, err := i.Initialize(context.Background())
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := dbConfig{DBUser: "todo", DBPass: "secret", DBHost: "db", DBPort: "5432", DBName: "relaytodo"}
	assert.Equal(t, "postgres://todo:secret@db:5432/relaytodo?sslmode=disable", cfg.DSN())
}
