package util

import (
	"math"
	"strconv"
)

type Number struct {
	Int        int64
	Uint       uint64
	Float      float64
	IsInt      bool
	IsUint     bool
	IsFloat    bool
	IsNegative bool
}

// ParseNumeric parses s as an integer (any base prefix accepted by strconv) or a float
func ParseNumeric(s string) (n Number, ok bool) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		n.Int = i
		n.IsInt = true
		n.IsNegative = i < 0
		return n, true
	}

	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		n.Uint = u
		n.IsUint = true
		return n, true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Float = f
		n.IsFloat = true
		n.IsNegative = f < 0
		return n, true
	}

	return n, false
}

// FitsInt reports whether n is a whole number representable as a signed integer of bitSize bits
func (n Number) FitsInt(bitSize int) bool {
	if !n.IsInt {
		return false
	}
	if bitSize == 0 {
		bitSize = strconv.IntSize
	}
	if bitSize == 64 {
		return true
	}
	limit := int64(1) << (bitSize - 1)

	return n.Int >= -limit && n.Int < limit
}

// FitsUint reports whether n is a non-negative whole number representable in bitSize bits
func (n Number) FitsUint(bitSize int) bool {
	if bitSize == 0 {
		bitSize = strconv.IntSize
	}
	var u uint64
	switch {
	case n.IsUint:
		u = n.Uint
	case n.IsInt && !n.IsNegative:
		u = uint64(n.Int)
	default:
		return false
	}
	if bitSize == 64 {
		return true
	}

	return u < uint64(1)<<bitSize
}

// FitsFloat reports whether n is representable as a float of bitSize bits
func (n Number) FitsFloat(bitSize int) bool {
	f := n.AsFloat()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}
	if bitSize == 32 {
		return math.Abs(f) <= math.MaxFloat32
	}

	return true
}

// AsFloat returns n as a float64 regardless of how it was parsed
func (n Number) AsFloat() float64 {
	switch {
	case n.IsInt:
		return float64(n.Int)
	case n.IsUint:
		return float64(n.Uint)
	default:
		return n.Float
	}
}
