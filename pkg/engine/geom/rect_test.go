package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := R(10, 20, 30, 40)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Pt(10, 20), true},
		{"inside", Pt(25, 35), true},
		{"right edge exclusive", Pt(40, 35), false},
		{"bottom edge exclusive", Pt(25, 60), false},
		{"last pixel", Pt(39, 59), true},
		{"left of rect", Pt(9, 35), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRect_Overlaps(t *testing.T) {
	door := R(650, 235, 400, 400)

	assert.False(t, R(500, 500, 150, 150).Overlaps(door), "touching edge must not overlap")
	assert.True(t, R(501, 500, 150, 150).Overlaps(door))
	assert.True(t, door.Overlaps(R(501, 500, 150, 150)), "overlap is symmetric")
	assert.False(t, R(700, 635, 10, 10).Overlaps(door))
}

func TestRect_ClampInside(t *testing.T) {
	screen := R(0, 0, 1024, 768)

	assert.Equal(t, R(0, 500, 150, 150), R(-40, 500, 150, 150).ClampInside(screen))
	assert.Equal(t, R(874, 500, 150, 150), R(990, 500, 150, 150).ClampInside(screen))
	assert.Equal(t, R(300, 618, 150, 150), R(300, 700, 150, 150).ClampInside(screen))
	assert.Equal(t, R(300, 500, 150, 150), R(300, 500, 150, 150).ClampInside(screen))
}

func TestRect_Centers(t *testing.T) {
	r := R(100, 500, 150, 150)
	assert.Equal(t, Pt(175, 575), r.Center())

	moved := R(0, 0, 32, 32).WithCenterX(175)
	assert.Equal(t, 159, moved.X)
	assert.Equal(t, 175, moved.CenterX())

	assert.Equal(t, R(34, 34, 32, 32), CenteredAt(Pt(50, 50), 32, 32))
}
