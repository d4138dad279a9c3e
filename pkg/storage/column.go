package storage

import (
	"github.com/elliotcourant/buffers"
	"github.com/elliotcourant/colstore/pkg/coltypes"
)

type MetaPrefix = byte

const (
	MetaPrefix_ColumnValue MetaPrefix = 'v'
)

// ColumnIdentity locates one column value in the store. It is built
// per lookup and never mutated.
type ColumnIdentity struct {
	TableName string
	RowName   string
	ColumnKey []byte
}

func (i ColumnIdentity) ColumnName() string {
	return string(i.ColumnKey)
}

func (i ColumnIdentity) Type() coltypes.Type {
	return coltypes.Classify(i.TableName, i.RowName, i.ColumnName())
}

// appendRaw appends bytes as-is; the buffer's variadic Append would
// write an int32 length prefix, which the key layout must not have.
func appendRaw(buf buffers.BytesBuffer, raw []byte) {
	for _, b := range raw {
		buf.AppendByte(b)
	}
}

func (i ColumnIdentity) Path() []byte {
	buf := buffers.NewBytesBuffer()
	buf.AppendByte(MetaPrefix_ColumnValue)
	buf.AppendUint8(uint8(len(i.TableName)))
	appendRaw(buf, []byte(i.TableName))
	buf.AppendUint8(uint8(len(i.RowName)))
	appendRaw(buf, []byte(i.RowName))
	appendRaw(buf, i.ColumnKey)
	return buf.Bytes()
}

// ColumnsByRowPrefix is the key prefix shared by every column of one
// row, used for range scans.
func ColumnsByRowPrefix(table, row string) []byte {
	buf := buffers.NewBytesBuffer()
	buf.AppendByte(MetaPrefix_ColumnValue)
	buf.AppendUint8(uint8(len(table)))
	appendRaw(buf, []byte(table))
	buf.AppendUint8(uint8(len(row)))
	appendRaw(buf, []byte(row))
	return buf.Bytes()
}

func columnIdentityFromPath(key []byte) ColumnIdentity {
	tl := int(key[1])
	table := string(key[2 : 2+tl])
	rl := int(key[2+tl])
	row := string(key[3+tl : 3+tl+rl])
	column := make([]byte, len(key)-3-tl-rl)
	copy(column, key[3+tl+rl:])
	return ColumnIdentity{
		TableName: table,
		RowName:   row,
		ColumnKey: column,
	}
}
