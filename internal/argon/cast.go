package argon

import (
	"fmt"
	"math"
)

// widening to int64 first keeps the comparisons valid on 32-bit platforms
func safeCastUint8(x int) (uint8, error) {
	if x < 0 || int64(x) > math.MaxUint8 {
		return 0, fmt.Errorf("argon2: can not cast %d to uint8", x)
	}
	return uint8(x), nil
}

func safeCastUint32(x int) (uint32, error) {
	if x < 0 || int64(x) > math.MaxUint32 {
		return 0, fmt.Errorf("argon2: can not cast %d to uint32", x)
	}
	return uint32(x), nil
}
