package model

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

func hashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

func hashFloat64(f float64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))

	return xxhash.Sum64(buf[:])
}

func hashInt(n int) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))

	return xxhash.Sum64(buf[:])
}
