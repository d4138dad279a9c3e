package keys

import (
	"encoding/binary"

	"github.com/elliotcourant/buffers"
	"github.com/pkg/errors"
)

var (
	ErrTruncatedComposite = errors.New("composite value too short")
)

// Composite layouts are positional, big-endian, with the string field
// running to the end of the buffer.
//
//	time+string:          [8 byte signed micros][utf-8 string]
//	priority+time+string: [1 byte priority][8 byte signed micros][utf-8 string]

// appendRaw appends bytes as-is; the buffer's variadic Append would
// write an int32 length prefix, which positional layouts must not have.
func appendRaw(buf buffers.BytesBuffer, raw []byte) {
	for _, b := range raw {
		buf.AppendByte(b)
	}
}

func PackTimeString(micros int64, str string) []byte {
	buf := buffers.NewBytesBuffer()
	buf.AppendInt64(micros)
	appendRaw(buf, []byte(str))
	return buf.Bytes()
}

func UnpackTimeString(raw []byte) (int64, string, error) {
	if len(raw) < 8 {
		return 0, "", errors.Wrapf(ErrTruncatedComposite, "need 8 bytes, have %d", len(raw))
	}
	micros := int64(binary.BigEndian.Uint64(raw[:8]))
	return micros, string(raw[8:]), nil
}

func PackPriorityTimeString(priority uint8, micros int64, str string) []byte {
	buf := buffers.NewBytesBuffer()
	buf.AppendUint8(priority)
	buf.AppendInt64(micros)
	appendRaw(buf, []byte(str))
	return buf.Bytes()
}

func UnpackPriorityTimeString(raw []byte) (uint8, int64, string, error) {
	if len(raw) < 9 {
		return 0, 0, "", errors.Wrapf(ErrTruncatedComposite, "need 9 bytes, have %d", len(raw))
	}
	micros := int64(binary.BigEndian.Uint64(raw[1:9]))
	return raw[0], micros, string(raw[9:]), nil
}
