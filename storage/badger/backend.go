package badger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/tessellate-ai/ragmux/storage"
)

// OpenMode controls what happens when the index directory is absent.
type OpenMode int

const (
	// Create makes the index directory when it doesn't exist (ingestion path).
	Create OpenMode = iota
	// MustExist fails with storage.ErrIndexNotFound when the directory is
	// absent (query path).
	MustExist
)

// Backend wraps a BadgerDB instance holding one domain index.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenBackend opens a BadgerDB database at the specified path.
// With Create, the directory is made if absent; with MustExist, a missing
// directory yields storage.ErrIndexNotFound.
func OpenBackend(filePath string, mode OpenMode) (*Backend, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if mode == MustExist {
			return nil, fmt.Errorf("%w: %s", storage.ErrIndexNotFound, filePath)
		}
		if err := os.MkdirAll(filePath, 0755); err != nil {
			return nil, err
		}
		info, err = os.Stat(filePath)
		if err != nil {
			return nil, err
		}
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", filePath)
	}

	opts := badger.DefaultOptions(filePath)
	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Backend{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// OpenMemoryBackend opens an in-memory backend, used by tests.
func OpenMemoryBackend() (*Backend, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Backend{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the BadgerDB database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// IsClosed returns true if the database is closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// WithTx executes a function within a BadgerDB transaction.
// If isWrite is true, creates a read-write transaction.
// The transaction is automatically discarded if fn returns an error.
// A closed backend fails with storage.ErrStorageClosed.
func (b *Backend) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	if b.db.IsClosed() {
		return storage.ErrStorageClosed
	}
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}
