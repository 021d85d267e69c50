package achievement

import (
	"errors"
	"fmt"
	"math/big"
)

var ErrPointsOutOfRange = errors.New("points out of range")

// NarrowPoints converts an on-chain uint256 point total to int64. Realistic
// totals fit easily; anything outside [0, MaxInt64] is rejected rather than
// truncated. A nil total counts as zero.
func NarrowPoints(v *big.Int) (int64, error) {
	if v == nil {
		return 0, nil
	}
	if v.Sign() < 0 || !v.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrPointsOutOfRange, v.String())
	}
	return v.Int64(), nil
}
