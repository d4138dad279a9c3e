package coltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	t.Run("all named", func(t *testing.T) {
		all := []Type{
			TypeString,
			TypeInt8,
			TypeUint8,
			TypeInt32,
			TypeUint32,
			TypeInt64,
			TypeUint64,
			TypeFloat32,
			TypeFloat64,
			TypeFloat64OrEmpty,
			TypeTimeMicros,
			TypeTimeSeconds,
			TypeTimeMicrosString,
			TypePriorityTimeString,
			TypeHexBlob,
			TypeHexBlobLimited,
			TypeMD5Blob,
			TypeSecureTristate,
			TypeContentStatus,
			TypeRightsValue,
		}
		assert.Len(t, all, 20)
		for _, ty := range all {
			assert.NotContains(t, ty.String(), "unknown type")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, "unknown type [200]", Type(200).String())
	})
}
