package greeks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

func TestDelta(t *testing.T) {
	t.Run("call buckets", func(t *testing.T) {
		cases := map[float64]float64{
			50:    0.95,
			79.99: 0.95,
			80:    0.85,
			90:    0.85,
			92:    0.70,
			95:    0.70,
			97:    0.60,
			98:    0.60,
			100:   0.50,
			102:   0.50,
			104:   0.40,
			105:   0.40,
			110:   0.30,
			115:   0.15,
			119.9: 0.15,
			120:   0.05,
			200:   0.05,
		}

		for ratio, expected := range cases {
			assert.Equal(t, expected, Delta(eventmodels.Call, ratio), "ratio %v", ratio)
		}
	})

	t.Run("put buckets mirror calls", func(t *testing.T) {
		cases := map[float64]float64{
			50:  -0.05,
			85:  -0.15,
			90:  -0.15,
			93:  -0.30,
			96:  -0.40,
			100: -0.50,
			103: -0.60,
			107: -0.70,
			115: -0.85,
			120: -0.95,
		}

		for ratio, expected := range cases {
			assert.Equal(t, expected, Delta(eventmodels.Put, ratio), "ratio %v", ratio)
		}
	})

	t.Run("bounds", func(t *testing.T) {
		for ratio := 0.0; ratio <= 250; ratio += 0.5 {
			c := Delta(eventmodels.Call, ratio)
			p := Delta(eventmodels.Put, ratio)
			assert.GreaterOrEqual(t, c, 0.05)
			assert.LessOrEqual(t, c, 0.95)
			assert.GreaterOrEqual(t, p, -0.95)
			assert.LessOrEqual(t, p, -0.05)
		}
	})

	t.Run("in the money call beats out of the money call", func(t *testing.T) {
		assert.Equal(t, 0.85, Delta(eventmodels.Call, 90))
		assert.Equal(t, 0.30, Delta(eventmodels.Call, 110))
		assert.Greater(t, Delta(eventmodels.Call, 90), Delta(eventmodels.Call, 110))
	})
}

func TestGammaVega(t *testing.T) {
	t.Run("tenor bases at the money", func(t *testing.T) {
		assert.Equal(t, 0.18, Gamma(eventmodels.Tenor2W, 100))
		assert.Equal(t, 0.03, Gamma(eventmodels.Tenor12M, 100))
		assert.Equal(t, 0.10, Gamma(eventmodels.Tenor("9M"), 100))

		assert.Equal(t, 0.12, Vega(eventmodels.Tenor2W, 100))
		assert.Equal(t, 0.30, Vega(eventmodels.Tenor12M, 100))
		assert.Equal(t, 0.20, Vega(eventmodels.Tenor("9M"), 100))
	})

	t.Run("proximity scaling", func(t *testing.T) {
		assert.Equal(t, 0.135, Gamma(eventmodels.Tenor1M, 104))
		assert.Equal(t, 0.105, Gamma(eventmodels.Tenor1M, 90))
		assert.Equal(t, 0.075, Gamma(eventmodels.Tenor1M, 130))
		assert.Equal(t, 0.105, Vega(eventmodels.Tenor1M, 110))
	})

	t.Run("non-increasing away from the money", func(t *testing.T) {
		distances := []float64{0, 2, 5, 10, 30}
		for _, tenor := range eventmodels.Tenors {
			for _, dir := range []float64{-1, 1} {
				prevGamma, prevVega := Gamma(tenor, 100), Vega(tenor, 100)
				for _, d := range distances {
					g, v := Gamma(tenor, 100+dir*d), Vega(tenor, 100+dir*d)
					assert.LessOrEqual(t, g, prevGamma)
					assert.LessOrEqual(t, v, prevVega)
					prevGamma, prevVega = g, v
				}
			}
		}
	})

	t.Run("long tenor vega exceeds short tenor vega", func(t *testing.T) {
		assert.Greater(t, Vega(eventmodels.Tenor12M, 100), Vega(eventmodels.Tenor2W, 100))
	})
}

func TestTheta(t *testing.T) {
	t.Run("decays with proximity", func(t *testing.T) {
		assert.Equal(t, -0.04, Theta(eventmodels.Tenor1M, 100, eventmodels.Call))
		assert.Equal(t, -0.028, Theta(eventmodels.Tenor1M, 110, eventmodels.Call))
		assert.Equal(t, -0.02, Theta(eventmodels.Tenor("1Y"), 100, eventmodels.Put))
	})

	t.Run("deep in the money is slightly positive", func(t *testing.T) {
		assert.Equal(t, 0.005, Theta(eventmodels.Tenor2W, 70, eventmodels.Call))
		assert.Equal(t, 0.001, Theta(eventmodels.Tenor12M, 130, eventmodels.Put))
		assert.Equal(t, 0.0025, Theta(eventmodels.Tenor3M, 121, eventmodels.Put))
	})

	t.Run("deep out of the money stays negative", func(t *testing.T) {
		assert.Equal(t, -0.025, Theta(eventmodels.Tenor2W, 130, eventmodels.Call))
		assert.Equal(t, -0.025, Theta(eventmodels.Tenor2W, 70, eventmodels.Put))
	})
}

func TestCompute(t *testing.T) {
	g := Compute(eventmodels.Call, eventmodels.Tenor1M, 100)
	assert.Equal(t, Greeks{Delta: 0.5, Gamma: 0.15, Theta: -0.04, Vega: 0.15}, g)
}
