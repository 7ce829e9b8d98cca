// Package storage defines the persistence interfaces the application relies
// on. It abstracts the standards library and category mapping tables plus
// transaction management so different backends (e.g. PostgreSQL) can provide
// concrete implementations.
package storage

import "context"

// AllStorage is a composite interface that includes all domain-specific
// storage capabilities required by the application.
type AllStorage interface {
	MappingStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same capabilities as AllStorage plus commit
// and rollback. Implementations become unusable after either is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions and manage its lifecycle.
type Storage interface {
	AllStorage

	// Health reports whether the backend is reachable.
	Health(ctx context.Context) error

	// Close releases any resources held by the storage implementation. After
	// Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes the callback with a transactional
	// handle, and commits on success or rolls back on error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
