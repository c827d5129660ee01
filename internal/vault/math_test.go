package vault

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrtScaledNonPositive(t *testing.T) {
	assert.Equal(t, int64(0), SqrtScaled(big.NewInt(0)).Int64())
	assert.Equal(t, int64(0), SqrtScaled(big.NewInt(-5)).Int64())
	assert.Equal(t, int64(0), SqrtScaled(nil).Int64())
}

func TestSqrtScaledOne(t *testing.T) {
	assert.Equal(t, int64(ScaleFactor), SqrtScaled(big.NewInt(1)).Int64())
}

func TestSqrtScaledPerfectSquares(t *testing.T) {
	cases := []struct {
		value, root int64
	}{
		{4, 2},
		{100, 10},
		{400, 20},
		{900, 30},
		{1_000_000, 1000},
	}
	for _, c := range cases {
		got := SqrtScaled(big.NewInt(c.value))
		assert.Equal(t, c.root*ScaleFactor, got.Int64(), "sqrt(%d)", c.value)
	}
}

func TestSqrtScaledLinearRefinement(t *testing.T) {
	// sqrt(2): low=1, refinement (2-1)*SCALE/2 -> 1.5 scaled.
	assert.Equal(t, int64(1_500_000_000), SqrtScaled(big.NewInt(2)).Int64())

	// sqrt(5): low=2, refinement (5-4)*SCALE/4 -> 2.25 scaled.
	assert.Equal(t, int64(2_250_000_000), SqrtScaled(big.NewInt(5)).Int64())

	// sqrt(10): low=3, refinement (10-9)*SCALE/6 -> 3.166... scaled.
	assert.Equal(t, int64(3_166_666_666), SqrtScaled(big.NewInt(10)).Int64())
}

func TestSqrtScaledApproximationBand(t *testing.T) {
	// The first-order correction overshoots slightly between squares;
	// it must stay within one part in 1e3 of the true root here.
	for _, value := range []int64{2, 3, 7, 50, 12345, 999_999} {
		got := SqrtScaled(big.NewInt(value))
		square := Unscale(new(big.Int).Mul(got, got))
		square = Unscale(square)
		diff := new(big.Int).Sub(square, big.NewInt(value))
		assert.LessOrEqual(t, diff.Abs(diff).Int64(), value/1000+1, "sqrt(%d)", value)
	}
}

func TestScaleUnscale(t *testing.T) {
	assert.Equal(t, int64(7*ScaleFactor), Scale(big.NewInt(7)).Int64())
	assert.Equal(t, int64(7), Unscale(big.NewInt(7*ScaleFactor)).Int64())

	// Truncating division, also toward zero for negatives.
	assert.Equal(t, int64(1), Unscale(big.NewInt(1_999_999_999)).Int64())
	assert.Equal(t, int64(-1), Unscale(big.NewInt(-1_999_999_999)).Int64())
}

func TestSatMulSaturates(t *testing.T) {
	big1 := new(big.Int).Lsh(big.NewInt(1), 100)
	assert.Equal(t, 0, satMul(big1, big1).Cmp(maxI128))

	neg := new(big.Int).Neg(big1)
	assert.Equal(t, 0, satMul(neg, big1).Cmp(maxI128))

	// In range stays exact.
	assert.Equal(t, int64(42), satMul(big.NewInt(6), big.NewInt(7)).Int64())
}
