// Package codec converts stored column values between their binary
// wire layouts and an editable textual form.
//
// Every value is interpreted through a coltypes.Type produced by the
// classifier. Fixed-width integers, floats and timestamps are
// big-endian. Composite layouts are positional with the string field
// running to the end of the buffer:
//
//	time+string:          [8 byte signed micros][utf-8 string]
//	priority+time+string: [1 byte priority][8 byte signed micros][utf-8 string]
//	rights:               [8 byte signed micros][newline separated utf-8 list]
//
// Decode and Encode are inverses for every type except plain strings
// (which round-trip through the CR/LF escape transform) and
// float64-or-empty (where the empty buffer and the empty string stand
// for null). Display mode adds annotations meant for humans only:
// parenthesized raw integers after timestamps, (hex)/(md5) prefixes,
// and truncation of long hex dumps. Display output is not valid
// Encode input.
//
// Both directions return typed errors; nothing is logged and no
// sentinel strings are produced. See errors.go for the taxonomy.
package codec
