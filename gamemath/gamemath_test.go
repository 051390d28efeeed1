package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 50, H: 50}

	assert.True(t, a.Intersects(Rect{X: 25, Y: 25, W: 50, H: 50}))
	assert.True(t, a.Intersects(Rect{X: 10, Y: 10, W: 5, H: 5}), "contained rectangle")
	assert.False(t, a.Intersects(Rect{X: 50, Y: 0, W: 10, H: 10}), "touching edge")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 60, W: 10, H: 10}))
}

func TestRectHelpers(t *testing.T) {
	r := CenteredRect(100, 100, 80, 40)
	assert.Equal(t, Rect{X: 60, Y: 80, W: 80, H: 40}, r)

	cx, cy := r.Center()
	assert.Equal(t, 100.0, cx)
	assert.Equal(t, 100.0, cy)

	assert.Equal(t, Rect{X: 55, Y: 75, W: 90, H: 50}, r.Inflate(5))
	assert.Equal(t, Rect{X: 65, Y: 70, W: 80, H: 40}, r.Translate(5, -10))
	assert.True(t, r.Contains(60, 80))
	assert.False(t, r.Contains(140, 80))
}

func TestClampAndSign(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 750))
	assert.Equal(t, 750.0, Clamp(800, 0, 750))
	assert.Equal(t, 12.0, Clamp(12, 0, 750))

	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-9))
	assert.Equal(t, 0.0, Sign(0))
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)

	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)

	assert.InDelta(t, 5.0, Distance(0, 0, 3, 4), 1e-9)
}

func TestAxisDirection(t *testing.T) {
	assert.Equal(t, -1.0, AxisDirection(true, false))
	assert.Equal(t, 1.0, AxisDirection(false, true))
	assert.Equal(t, 0.0, AxisDirection(true, true))
	assert.Equal(t, 0.0, AxisDirection(false, false))
}
