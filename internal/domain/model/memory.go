package model

import (
	"fmt"
	"strconv"
)

type MemorySize int

const (
	Memory256GB MemorySize = 256
	Memory512GB MemorySize = 512
)

func (m MemorySize) Gigabytes() int {
	return int(m)
}

func (m MemorySize) String() string {
	return strconv.Itoa(int(m)) + "GB"
}

func (m MemorySize) IsValid() bool {
	switch m {
	case Memory256GB, Memory512GB:
		return true
	default:
		return false
	}
}

func ParseMemorySize(gigabytes int) (MemorySize, error) {
	size := MemorySize(gigabytes)
	if !size.IsValid() {
		return 0, fmt.Errorf("%w: invalid memory size %dGB", ErrInvalidArgument, gigabytes)
	}

	return size, nil
}

func AllMemorySizes() []MemorySize {
	return []MemorySize{Memory256GB, Memory512GB}
}
