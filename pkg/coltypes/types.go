package coltypes

import (
	"fmt"
)

// Type identifies the binary layout of a stored column value. The set
// is closed; decode and encode switch exhaustively over it.
type Type uint8

const (
	TypeString             Type = 0
	TypeInt8               Type = 1
	TypeUint8              Type = 2
	TypeInt32              Type = 3
	TypeUint32             Type = 4
	TypeInt64              Type = 5
	TypeUint64             Type = 6
	TypeFloat32            Type = 7
	TypeFloat64            Type = 8
	TypeFloat64OrEmpty     Type = 9
	TypeTimeMicros         Type = 10
	TypeTimeSeconds        Type = 11
	TypeTimeMicrosString   Type = 12
	TypePriorityTimeString Type = 13
	TypeHexBlob            Type = 14
	TypeHexBlobLimited     Type = 15
	TypeMD5Blob            Type = 16
	TypeSecureTristate     Type = 17
	TypeContentStatus      Type = 18
	TypeRightsValue        Type = 19
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt8:
		return "int8"
	case TypeUint8:
		return "uint8"
	case TypeInt32:
		return "int32"
	case TypeUint32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeFloat64OrEmpty:
		return "float64-or-empty"
	case TypeTimeMicros:
		return "time-microseconds"
	case TypeTimeSeconds:
		return "time-seconds"
	case TypeTimeMicrosString:
		return "time-microseconds-and-string"
	case TypePriorityTimeString:
		return "priority-and-time-microseconds-and-string"
	case TypeHexBlob:
		return "hex-blob"
	case TypeHexBlobLimited:
		return "hex-blob-limited"
	case TypeMD5Blob:
		return "md5-blob"
	case TypeSecureTristate:
		return "secure-tristate"
	case TypeContentStatus:
		return "content-status-bitfield"
	case TypeRightsValue:
		return "rights-value"
	default:
		return fmt.Sprintf("unknown type [%d]", uint8(t))
	}
}
