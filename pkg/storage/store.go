package storage

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/dgraph-io/badger"
	"github.com/elliotcourant/timber"
	"github.com/pkg/errors"
)

var (
	ErrColumnNotFound = errors.New("column not found")
)

// Store is the thin binding between column identities and the badger
// key space. It never interprets values; the codec does that.
type Store struct {
	db     *badger.DB
	logger timber.Logger
}

func NewStore(directory string, logger timber.Logger) (*Store, error) {
	if logger == nil {
		logger = timber.New()
	}
	db, err := badger.Open(badger.DefaultOptions(directory))
	if err != nil {
		return nil, err
	}
	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

func (s *Store) Get(identity ColumnIdentity) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(identity.Path())
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(ErrColumnNotFound, "%s/%s/%s",
				identity.TableName, identity.RowName, identity.ColumnName())
		} else if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	return value, err
}

func (s *Store) Set(identity ColumnIdentity, value []byte) error {
	s.logger.Debugf("writing %d byte(s) to %s/%s/%s",
		len(value), identity.TableName, identity.RowName, identity.ColumnName())
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(identity.Path(), value)
	})
}

func (s *Store) Delete(identity ColumnIdentity) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(identity.Path())
	})
}

// Columns lists every column of a row, ordered by column name.
func (s *Store) Columns(table, row string) ([]ColumnIdentity, error) {
	prefix := ColumnsByRowPrefix(table, row)
	items := make([]ColumnIdentity, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         prefix,
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			items = append(items, columnIdentityFromPath(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sorted := make([]ColumnIdentity, 0, len(items))
	linq.From(items).
		OrderByT(func(i ColumnIdentity) string {
			return i.ColumnName()
		}).
		ToSlice(&sorted)
	return sorted, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
