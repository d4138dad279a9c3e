package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/elliotcourant/colstore/pkg/coltypes"
	"github.com/elliotcourant/colstore/pkg/keys"
	"github.com/pkg/errors"
)

// DefaultHexLimit is how many bytes of a length-limited hex blob are
// shown in display mode before the dump is cut off.
const DefaultHexLimit = 64

// Options control display-only behavior of Decode. The zero value is
// the non-display form, which is what Encode accepts back.
type Options struct {
	// Display enables human-facing annotations: parenthesized raw
	// integers after timestamps, the (hex)/(md5) prefixes, and hex
	// truncation. Display output must not be fed back into Encode.
	Display bool

	// HexLimit overrides DefaultHexLimit for hex-blob-limited
	// values. Zero means the default. Only read during the call, so
	// concurrent decodes with different limits are safe.
	HexLimit int
}

// DisplayOptions are the options administrative tooling uses when
// rendering values for a human.
func DisplayOptions() Options {
	return Options{
		Display:  true,
		HexLimit: DefaultHexLimit,
	}
}

var contentStatusNames = []string{
	"unknown state",
	"create",
	"normal",
	"hidden",
	"moved",
	"deleted",
}

// Decode renders a stored binary value as text according to its
// column type. Buffers shorter than the type's fixed-width portion
// fail with ErrDecodeOutOfBounds; extra trailing bytes on fixed-width
// types are ignored.
func Decode(raw []byte, t coltypes.Type, opts Options) (string, error) {
	switch t {
	case coltypes.TypeInt8:
		if err := need(raw, 1, t); err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(int8(raw[0])), 10), nil
	case coltypes.TypeUint8:
		if err := need(raw, 1, t); err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(raw[0]), 10), nil
	case coltypes.TypeInt32:
		if err := need(raw, 4, t); err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(int32(binary.BigEndian.Uint32(raw))), 10), nil
	case coltypes.TypeUint32:
		if err := need(raw, 4, t); err != nil {
			return "", err
		}
		return strconv.FormatUint(uint64(binary.BigEndian.Uint32(raw)), 10), nil
	case coltypes.TypeInt64:
		if err := need(raw, 8, t); err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(binary.BigEndian.Uint64(raw)), 10), nil
	case coltypes.TypeUint64:
		if err := need(raw, 8, t); err != nil {
			return "", err
		}
		return strconv.FormatUint(binary.BigEndian.Uint64(raw), 10), nil
	case coltypes.TypeFloat32:
		if err := need(raw, 4, t); err != nil {
			return "", err
		}
		f := math.Float32frombits(binary.BigEndian.Uint32(raw))
		return strconv.FormatFloat(float64(f), 'g', -1, 32), nil
	case coltypes.TypeFloat64:
		if err := need(raw, 8, t); err != nil {
			return "", err
		}
		return formatFloat64(binary.BigEndian.Uint64(raw)), nil
	case coltypes.TypeFloat64OrEmpty:
		// The empty buffer is the null marker, distinct from 0.0.
		if len(raw) == 0 {
			return "", nil
		}
		if err := need(raw, 8, t); err != nil {
			return "", err
		}
		return formatFloat64(binary.BigEndian.Uint64(raw)), nil
	case coltypes.TypeTimeMicros:
		if err := need(raw, 8, t); err != nil {
			return "", err
		}
		return formatTimeMicros(int64(binary.BigEndian.Uint64(raw)), opts.Display), nil
	case coltypes.TypeTimeSeconds:
		if err := need(raw, 8, t); err != nil {
			return "", err
		}
		return formatTimeSeconds(binary.BigEndian.Uint64(raw), opts.Display), nil
	case coltypes.TypeTimeMicrosString, coltypes.TypeRightsValue:
		micros, str, err := keys.UnpackTimeString(raw)
		if err != nil {
			return "", errors.Wrapf(ErrDecodeOutOfBounds, "%s needs 8 byte(s), have %d", t, len(raw))
		}
		return formatTimeMicros(micros, opts.Display) + " " + escapeString(str), nil
	case coltypes.TypePriorityTimeString:
		priority, micros, str, err := keys.UnpackPriorityTimeString(raw)
		if err != nil {
			return "", errors.Wrapf(ErrDecodeOutOfBounds, "%s needs 9 byte(s), have %d", t, len(raw))
		}
		return strconv.FormatUint(uint64(priority), 10) + " " +
			formatTimeMicros(micros, opts.Display) + " " + escapeString(str), nil
	case coltypes.TypeHexBlob:
		out := hexSpaced(raw)
		if opts.Display {
			out = "(hex) " + out
		}
		return out, nil
	case coltypes.TypeHexBlobLimited:
		// The full dump is still available outside display mode.
		if !opts.Display {
			return hexSpaced(raw), nil
		}
		limit := opts.HexLimit
		if limit <= 0 {
			limit = DefaultHexLimit
		}
		shown := raw
		truncated := false
		if len(raw) > limit {
			shown = raw[:limit]
			truncated = true
		}
		out := "(hex) " + hexSpaced(shown)
		if truncated {
			out += "..."
		}
		return out, nil
	case coltypes.TypeMD5Blob:
		out := keys.BytesToHex(raw)
		if opts.Display {
			out = "(md5) " + out
		}
		return out, nil
	case coltypes.TypeSecureTristate:
		if err := need(raw, 1, t); err != nil {
			return "", err
		}
		switch v := int8(raw[0]); v {
		case -1:
			return "not checked (-1)", nil
		case 0:
			return "not secure (0)", nil
		case 1:
			return "secure (1)", nil
		default:
			return fmt.Sprintf("unknown secure status (%d)", v), nil
		}
	case coltypes.TypeContentStatus:
		if err := need(raw, 4, t); err != nil {
			return "", err
		}
		low := binary.BigEndian.Uint32(raw) & 0xff
		if !opts.Display {
			return strconv.FormatUint(uint64(low), 10), nil
		}
		if int(low) < len(contentStatusNames) {
			return contentStatusNames[low], nil
		}
		return fmt.Sprintf("unknown content status (%d)", low), nil
	case coltypes.TypeString:
		return escapeString(string(raw)), nil
	default:
		return "", errors.Errorf("no decoder for column type %s", t)
	}
}

func need(raw []byte, n int, t coltypes.Type) error {
	if len(raw) < n {
		return errors.Wrapf(ErrDecodeOutOfBounds,
			"%s needs %d byte(s), have %d", t, n, len(raw))
	}
	return nil
}

func formatFloat64(bits uint64) string {
	return strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64)
}

func hexSpaced(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	out := make([]byte, 0, len(raw)*3-1)
	for i, b := range raw {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, hexDigits[b>>4], hexDigits[b&0xf])
	}
	return string(out)
}

const hexDigits = "0123456789abcdef"

var escapeReplacer = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// escapeString makes control characters visible and editable; the
// transform is reversed by unescapeString on encode.
func escapeString(s string) string {
	return escapeReplacer.Replace(s)
}
