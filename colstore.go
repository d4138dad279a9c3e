package colstore

import (
	"github.com/elliotcourant/colstore/pkg/codec"
	"github.com/elliotcourant/colstore/pkg/storage"
	"github.com/elliotcourant/timber"
)

type Options struct {
	Directory string

	// HexDisplayLimit caps display-mode hex dumps, in bytes. Zero
	// means codec.DefaultHexLimit.
	HexDisplayLimit int
}

// DB is the surface administrative tooling works against: values go
// out as text (display or editable) and come back in as text.
type DB interface {
	// Get returns the editable text form of a column value, which
	// Put accepts back.
	Get(table, row string, column []byte) (string, error)

	// GetDisplay returns the annotated human-facing form.
	GetDisplay(table, row string, column []byte) (string, error)

	// GetRaw returns the stored bytes untouched.
	GetRaw(table, row string, column []byte) ([]byte, error)

	// Put encodes text per the column's classified type and stores it.
	Put(table, row string, column []byte, text string) error

	Delete(table, row string, column []byte) error
	Columns(table, row string) ([]storage.ColumnIdentity, error)
	Close() error
}

func Open(options *Options) (DB, error) {
	logger := timber.New()
	store, err := storage.NewStore(options.Directory, logger)
	if err != nil {
		return nil, err
	}
	return &db{
		options: options,
		logger:  logger,
		store:   store,
	}, nil
}

type db struct {
	options *Options
	logger  timber.Logger
	store   *storage.Store
}

func (d *db) identity(table, row string, column []byte) storage.ColumnIdentity {
	return storage.ColumnIdentity{
		TableName: table,
		RowName:   row,
		ColumnKey: column,
	}
}

func (d *db) Get(table, row string, column []byte) (string, error) {
	return d.decode(d.identity(table, row, column), codec.Options{})
}

func (d *db) GetDisplay(table, row string, column []byte) (string, error) {
	return d.decode(d.identity(table, row, column), codec.Options{
		Display:  true,
		HexLimit: d.options.HexDisplayLimit,
	})
}

func (d *db) GetRaw(table, row string, column []byte) ([]byte, error) {
	return d.store.Get(d.identity(table, row, column))
}

func (d *db) decode(identity storage.ColumnIdentity, opts codec.Options) (string, error) {
	raw, err := d.store.Get(identity)
	if err != nil {
		return "", err
	}
	text, err := codec.Decode(raw, identity.Type(), opts)
	if err != nil {
		d.logger.Errorf("could not decode %s/%s/%s as %s: %v",
			identity.TableName, identity.RowName, identity.ColumnName(), identity.Type(), err)
		return "", err
	}
	return text, nil
}

func (d *db) Put(table, row string, column []byte, text string) error {
	identity := d.identity(table, row, column)
	raw, err := codec.Encode(text, identity.Type())
	if err != nil {
		return err
	}
	return d.store.Set(identity, raw)
}

func (d *db) Delete(table, row string, column []byte) error {
	return d.store.Delete(d.identity(table, row, column))
}

func (d *db) Columns(table, row string) ([]storage.ColumnIdentity, error) {
	return d.store.Columns(table, row)
}

func (d *db) Close() error {
	return d.store.Close()
}
