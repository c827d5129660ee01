package vault

import "math/big"

// Fixed-point arithmetic for the quadratic funding formula. Values are
// 128-bit-range signed integers; fractional results are represented
// scaled by 1e9 to avoid floating point.

// ScaleFactor is the fixed-point scale (1e9).
const ScaleFactor = 1_000_000_000

var (
	scaleBig = big.NewInt(ScaleFactor)

	// Signed 128-bit range. Multiplications that would leave it
	// saturate to maxI128 rather than wrap.
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// inI128 reports whether v lies in the signed 128-bit range. Amounts and
// reputation values outside it are rejected at the ledger entry points.
func inI128(v *big.Int) bool {
	return v.Cmp(minI128) >= 0 && v.Cmp(maxI128) <= 0
}

// satMul multiplies a and b, saturating to maxI128 when the product
// leaves the 128-bit signed range.
func satMul(a, b *big.Int) *big.Int {
	product := new(big.Int).Mul(a, b)
	if product.Cmp(maxI128) > 0 || product.Cmp(minI128) < 0 {
		return new(big.Int).Set(maxI128)
	}
	return product
}

// SqrtScaled returns approximately sqrt(value) * ScaleFactor.
//
// It binary-searches for the largest low with low*low <= value, then
// applies one linear refinement step:
//
//	result = low*SCALE + (value - low*low)*SCALE / (2*low)
//
// This is a first-order correction, not an exact fixed-point root.
// Downstream match amounts depend on this exact approximation, so it
// must not be replaced with a more precise one.
func SqrtScaled(value *big.Int) *big.Int {
	if value == nil || value.Sign() <= 0 {
		return big.NewInt(0)
	}
	if value.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(ScaleFactor)
	}

	low := big.NewInt(0)
	high := new(big.Int).Set(value)
	one := big.NewInt(1)

	for low.Cmp(high) < 0 {
		// mid = (low + high + 1) / 2
		mid := new(big.Int).Add(low, high)
		mid.Add(mid, one)
		mid.Rsh(mid, 1)

		if satMul(mid, mid).Cmp(value) <= 0 {
			low = mid
		} else {
			high = new(big.Int).Sub(mid, one)
		}
	}

	result := new(big.Int).Mul(low, scaleBig)

	if low.Sign() > 0 {
		// The refinement uses low*low without saturation; an overflow
		// here collapses to zero rather than saturating.
		lowSquared := new(big.Int).Mul(low, low)
		if lowSquared.Cmp(maxI128) > 0 {
			lowSquared = big.NewInt(0)
		}
		diff := new(big.Int).Sub(value, lowSquared)
		denominator := new(big.Int).Lsh(low, 1)
		remainder := new(big.Int).Mul(diff, scaleBig)
		remainder.Quo(remainder, denominator)
		result.Add(result, remainder)
	}

	return result
}

// Unscale divides a scaled value by ScaleFactor, truncating toward zero.
func Unscale(value *big.Int) *big.Int {
	return new(big.Int).Quo(value, scaleBig)
}

// Scale multiplies a value by ScaleFactor.
func Scale(value *big.Int) *big.Int {
	return new(big.Int).Mul(value, scaleBig)
}
