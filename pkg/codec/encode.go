package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/elliotcourant/buffers"
	"github.com/elliotcourant/colstore/pkg/coltypes"
	"github.com/elliotcourant/colstore/pkg/keys"
	"github.com/pkg/errors"
)

// Encode converts editable text back into a column's binary wire
// layout. It accepts non-display Decode output; display-only
// annotations are either stripped (the (hex)/(md5) prefixes) or
// rejected. Failures are always surfaced, never silently encoded.
func Encode(text string, t coltypes.Type) ([]byte, error) {
	switch t {
	case coltypes.TypeInt8:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		return []byte{byte(int8(v))}, nil
	case coltypes.TypeUint8:
		v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		return []byte{byte(v)}, nil
	case coltypes.TypeInt32:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendInt32(int32(v))
		return buf.Bytes(), nil
	case coltypes.TypeUint32:
		v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendUint32(uint32(v))
		return buf.Bytes(), nil
	case coltypes.TypeInt64:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendInt64(v)
		return buf.Bytes(), nil
	case coltypes.TypeUint64:
		v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendUint64(v)
		return buf.Bytes(), nil
	case coltypes.TypeFloat32:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s", t)
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendUint32(math.Float32bits(float32(f)))
		return buf.Bytes(), nil
	case coltypes.TypeFloat64:
		return encodeFloat64(text, t)
	case coltypes.TypeFloat64OrEmpty:
		// Empty text is the null marker, not 0.0.
		if strings.TrimSpace(text) == "" {
			return []byte{}, nil
		}
		return encodeFloat64(text, t)
	case coltypes.TypeTimeMicros:
		micros, err := parseTimestamp(text, true)
		if err != nil {
			return nil, err
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendInt64(micros)
		return buf.Bytes(), nil
	case coltypes.TypeTimeSeconds:
		micros, err := parseTimestamp(text, false)
		if err != nil {
			return nil, err
		}
		buf := buffers.NewBytesBuffer()
		buf.AppendUint64(uint64(micros / 1e6))
		return buf.Bytes(), nil
	case coltypes.TypeTimeMicrosString, coltypes.TypeRightsValue:
		micros, rest, err := splitTimestampPrefix(text)
		if err != nil {
			return nil, err
		}
		return keys.PackTimeString(micros, unescapeString(rest)), nil
	case coltypes.TypePriorityTimeString:
		parts := strings.SplitN(text, " ", 2)
		if len(parts) < 2 {
			return nil, errors.Wrapf(ErrFieldCountMismatch,
				"expected priority, timestamp and string, got %d field(s)", len(parts))
		}
		priority, err := strconv.ParseUint(parts[0], 10, 8)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s priority", t)
		}
		micros, rest, err := splitTimestampPrefix(parts[1])
		if err != nil {
			return nil, err
		}
		return keys.PackPriorityTimeString(uint8(priority), micros, unescapeString(rest)), nil
	case coltypes.TypeHexBlob, coltypes.TypeHexBlobLimited:
		return parseHexText(text, "(hex) ")
	case coltypes.TypeMD5Blob:
		return parseHexText(text, "(md5) ")
	case coltypes.TypeSecureTristate:
		return encodeSecureTristate(text)
	case coltypes.TypeContentStatus:
		return encodeContentStatus(text)
	case coltypes.TypeString:
		return []byte(unescapeString(text)), nil
	default:
		return nil, errors.Errorf("no encoder for column type %s", t)
	}
}

func encodeFloat64(text string, t coltypes.Type) ([]byte, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s", t)
	}
	buf := buffers.NewBytesBuffer()
	buf.AppendUint64(math.Float64bits(f))
	return buf.Bytes(), nil
}

// parseHexText accepts the non-display hex forms (spaced pairs or a
// bare digit run) and tolerates the display prefix by stripping it.
// A trailing truncation ellipsis is not hex and is rejected, since
// encoding a truncated dump would corrupt the stored value.
func parseHexText(text, displayPrefix string) ([]byte, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, displayPrefix)
	text = strings.Replace(text, " ", "", -1)
	return keys.HexToBytes(text)
}

// splitEnumLabel lowers and trims enum text, peeling off a trailing
// parenthesized numeral if one is present, so that both the decode
// rendering ("secure (1)") and the bare label ("secure") match.
func splitEnumLabel(text string) (string, string) {
	text = strings.TrimSpace(strings.ToLower(text))
	if strings.HasSuffix(text, ")") {
		if i := strings.LastIndex(text, "("); i > 0 {
			return strings.TrimSpace(text[:i]), text[i+1 : len(text)-1]
		}
	}
	return text, ""
}

func encodeSecureTristate(text string) ([]byte, error) {
	label, numeral := splitEnumLabel(text)
	switch label {
	case "not checked":
		return []byte{0xff}, nil
	case "not secure":
		return []byte{0x00}, nil
	case "secure":
		return []byte{0x01}, nil
	case "unknown secure status":
		if v, err := strconv.ParseInt(numeral, 10, 8); err == nil {
			return []byte{byte(int8(v))}, nil
		}
	default:
		if v, err := strconv.ParseInt(label, 10, 8); err == nil {
			return []byte{byte(int8(v))}, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEnumLabel, "secure status [%s]", text)
}

func encodeContentStatus(text string) ([]byte, error) {
	label, numeral := splitEnumLabel(text)
	value := uint64(0)
	found := false
	for i, name := range contentStatusNames {
		if label == name {
			value, found = uint64(i), true
			break
		}
	}
	if !found && label == "unknown content status" {
		if v, err := strconv.ParseUint(numeral, 10, 32); err == nil {
			value, found = v, true
		}
	}
	if !found {
		if v, err := strconv.ParseUint(label, 10, 32); err == nil {
			value, found = v, true
		}
	}
	if !found {
		return nil, errors.Wrapf(ErrUnknownEnumLabel, "content status [%s]", text)
	}
	buf := buffers.NewBytesBuffer()
	buf.AppendUint32(uint32(value))
	return buf.Bytes(), nil
}

var unescapeReplacer = strings.NewReplacer(`\r`, "\r", `\n`, "\n")

func unescapeString(s string) string {
	return unescapeReplacer.Replace(s)
}
