package postgres

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/lib/pq"
	"github.com/nachobar3/perfectstore-app/internal/config"
)

type Conn interface {
	Queryer
	Begin() (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

var (
	once      sync.Once
	shared    *Connection
	sharedErr error
)

// Connect devuelve el pool de conexiones compartido del proceso. La
// inicialización corre una sola vez aunque lo llamen requests concurrentes;
// las llamadas siguientes reciben el mismo handle.
func Connect(ctx context.Context, cfg config.Database) (*Connection, error) {
	once.Do(func() {
		shared, sharedErr = newConnection(ctx, cfg)
	})
	return shared, sharedErr
}

func newConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction ejecuta fn dentro de una transacción
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}
