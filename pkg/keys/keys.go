package keys

import (
	"crypto/md5"

	"github.com/pkg/errors"
)

var (
	ErrInvalidHexDigit = errors.New("invalid hex digit")
)

const hexDigits = "0123456789abcdef"

// BytesToHex renders raw bytes as lowercase hex, two digits per byte,
// no separators.
func BytesToHex(raw []byte) string {
	out := make([]byte, len(raw)*2)
	for i, b := range raw {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0xf]
	}
	return string(out)
}

// HexToBytes parses lowercase or uppercase hex text back into bytes.
// Odd-length input or a non-hex character is an error.
func HexToBytes(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidHexDigit, "odd length hex input [%d]", len(text))
	}
	out := make([]byte, len(text)/2)
	for i := 0; i < len(out); i++ {
		hi, ok := hexDigitValue(text[i*2])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidHexDigit, "at offset %d", i*2)
		}
		lo, ok := hexDigitValue(text[i*2+1])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidHexDigit, "at offset %d", i*2+1)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigitValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DigestHex returns the md5 digest of data as 32 lowercase hex digits,
// the textual form used for digest row keys.
func DigestHex(data []byte) string {
	sum := md5.Sum(data)
	return BytesToHex(sum[:])
}
