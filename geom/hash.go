package geom

import "math"

// hashSeed is arbitrary.
const hashSeed = 17

// hashEmpty is the hash of every empty floating-point value.
const hashEmpty = 179

func hashCombine(seed uint64, vals ...uint64) uint64 {
	for _, v := range vals {
		seed ^= v + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2)
	}
	return seed
}

func hashInt(x int32) uint64 {
	return uint64(uint32(x))
}

// hashFloat hashes x so that values comparing equal with == hash
// equal, which means -0 and +0 must collide.
func hashFloat(x float64) uint64 {
	if x == 0 {
		return 0
	}
	return math.Float64bits(x)
}
