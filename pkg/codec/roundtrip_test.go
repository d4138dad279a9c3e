package codec

import (
	"math"
	"testing"
	"time"

	"github.com/elliotcourant/colstore/pkg/coltypes"
	"github.com/elliotcourant/colstore/pkg/keys"
	"github.com/stretchr/testify/assert"
)

// Every type except plain strings and float64-or-empty must survive
// both directions bit for bit. Display output is excluded; only the
// editable (non-display) form feeds back into Encode.

func TestRoundTrip_TextFirst(t *testing.T) {
	scenarios := map[coltypes.Type][]string{
		coltypes.TypeInt8:       {"-128", "0", "127"},
		coltypes.TypeUint8:      {"0", "255"},
		coltypes.TypeInt32:      {"-2147483648", "0", "2147483647"},
		coltypes.TypeUint32:     {"0", "4294967295"},
		coltypes.TypeInt64:      {"-9223372036854775808", "9223372036854775807"},
		coltypes.TypeUint64:     {"0", "18446744073709551615"},
		coltypes.TypeFloat32:    {"0", "1.5", "-0.25"},
		coltypes.TypeFloat64:    {"0", "3.25", "-1e+100"},
		coltypes.TypeTimeMicros: {"time not set (0)", "2021-06-01 12:30:45.123456"},
		coltypes.TypeTimeSeconds: {
			"time not set (0)",
			"2021-06-01 12:30:45",
			"1970-01-01 00:00:01",
		},
		coltypes.TypeTimeMicrosString: {
			"time not set (0) pending",
			"2021-06-01 12:30:45.000000 bob@example.com",
		},
		coltypes.TypePriorityTimeString: {
			"5 2021-06-01 12:30:45.000000 msg-1",
			"0 time not set (0) queued",
		},
		coltypes.TypeRightsValue: {
			`2021-06-01 12:30:45.000000 read\nwrite\nadmin`,
		},
		coltypes.TypeHexBlob:        {"00 01 ab", "ff"},
		coltypes.TypeHexBlobLimited: {"de ad be ef"},
		coltypes.TypeMD5Blob:        {"00000000000000000000000000000000"},
		coltypes.TypeSecureTristate: {
			"not checked (-1)",
			"not secure (0)",
			"secure (1)",
		},
		coltypes.TypeContentStatus: {"0", "2", "5", "200"},
	}
	for ty, texts := range scenarios {
		t.Run(ty.String(), func(t *testing.T) {
			for _, text := range texts {
				raw, err := Encode(text, ty)
				assert.NoError(t, err, "input [%s]", text)

				back, err := Decode(raw, ty, Options{})
				assert.NoError(t, err, "input [%s]", text)
				assert.Equal(t, text, back, "input [%s]", text)
			}
		})
	}
}

func TestRoundTrip_BinaryFirst(t *testing.T) {
	micros := time.Date(2021, 6, 1, 12, 30, 45, 0, time.UTC).Unix() * 1e6
	scenarios := map[coltypes.Type][][]byte{
		coltypes.TypeInt8:               {{0x00}, {0x7f}, {0x80}, {0xff}},
		coltypes.TypeUint8:              {{0x00}, {0xff}},
		coltypes.TypeInt32:              {be32(0), be32(0xffffffff)},
		coltypes.TypeUint32:             {be32(3000000000)},
		coltypes.TypeInt64:              {be64(0), be64(1)},
		coltypes.TypeUint64:             {be64(18446744073709551615)},
		coltypes.TypeFloat32:            {be32(math.Float32bits(1.5))},
		coltypes.TypeFloat64:            {be64(math.Float64bits(-0.25))},
		coltypes.TypeTimeMicros:         {be64(0), be64(uint64(micros))},
		coltypes.TypeTimeSeconds:        {be64(0), be64(1622550645)},
		coltypes.TypeTimeMicrosString:   {keys.PackTimeString(micros, ""), keys.PackTimeString(0, "x y z")},
		coltypes.TypePriorityTimeString: {keys.PackPriorityTimeString(9, micros, "a b")},
		coltypes.TypeRightsValue:        {keys.PackTimeString(micros, "read\nwrite")},
		coltypes.TypeHexBlob:            {{}, {0xde, 0xad}},
		coltypes.TypeHexBlobLimited:     {make([]byte, 100)},
		coltypes.TypeMD5Blob:            {make([]byte, 16)},
		coltypes.TypeSecureTristate:     {{0xff}, {0x00}, {0x01}, {0x07}},
		coltypes.TypeContentStatus:      {be32(0), be32(5), be32(200)},
	}
	for ty, raws := range scenarios {
		t.Run(ty.String(), func(t *testing.T) {
			for _, raw := range raws {
				text, err := Decode(raw, ty, Options{})
				assert.NoError(t, err)

				back, err := Encode(text, ty)
				assert.NoError(t, err, "text [%s]", text)
				assert.Equal(t, raw, back, "text [%s]", text)
			}
		})
	}
}

func TestRoundTrip_String(t *testing.T) {
	t.Run("escape transform is reversible", func(t *testing.T) {
		for _, s := range []string{
			"",
			"plain",
			"with\rcarriage",
			"with\nnewline",
			"both\r\nkinds",
		} {
			raw, err := Encode(mustDecodeString(t, s), coltypes.TypeString)
			assert.NoError(t, err)
			assert.Equal(t, []byte(s), raw)
		}
	})
}

func mustDecodeString(t *testing.T, s string) string {
	text, err := Decode([]byte(s), coltypes.TypeString, Options{})
	assert.NoError(t, err)
	return text
}

func TestRoundTrip_Float64OrEmpty(t *testing.T) {
	t.Run("null marker", func(t *testing.T) {
		raw, err := Encode("", coltypes.TypeFloat64OrEmpty)
		assert.NoError(t, err)
		assert.Len(t, raw, 0)

		text, err := Decode(raw, coltypes.TypeFloat64OrEmpty, Options{})
		assert.NoError(t, err)
		assert.Equal(t, "", text)
	})

	t.Run("real zero", func(t *testing.T) {
		raw, err := Encode("0", coltypes.TypeFloat64OrEmpty)
		assert.NoError(t, err)
		assert.Len(t, raw, 8)
	})
}
