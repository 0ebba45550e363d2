// Package endian provides byte order utilities for snapshot encoding and decoding.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into a
// single EndianEngine interface so encoders can both write into fixed slices and
// append to growing buffers through one value.
//
// Most callers should use GetLittleEndianEngine, the default for bufdict
// snapshots. Big-endian snapshots are supported for interoperability; the
// header records which order was used so decoders pick the right engine.
//
// All functions are safe for concurrent use; the returned engines are the
// stateless binary.LittleEndian / binary.BigEndian values.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) comes first,
	// on a big-endian host the MSB (0x01) does.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// CompareNativeEndian reports whether the engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
