package domain

// One of the four equal bay regions used for weight distribution.
// Each quadrant spans half the bay length, half the bay width, and the
// full bay height. Quadrant state (shelf offset, accumulated weight) is
// rebuilt fresh for every packing run and never persisted.
type Quadrant int

const (
	FrontLeft Quadrant = iota
	FrontRight
	RearLeft
	RearRight
)

// Quadrants in the fixed tie-break order used by the packer.
var Quadrants = [4]Quadrant{FrontLeft, FrontRight, RearLeft, RearRight}

func (q Quadrant) String() string {
	switch q {
	case FrontLeft:
		return "front-left"
	case FrontRight:
		return "front-right"
	case RearLeft:
		return "rear-left"
	case RearRight:
		return "rear-right"
	}
	return "unknown"
}

func (q Quadrant) IsFront() bool {
	return q == FrontLeft || q == FrontRight
}

func (q Quadrant) IsLeft() bool {
	return q == FrontLeft || q == RearLeft
}

// Origin returns the quadrant's minimum corner in the vehicle frame.
// Front is -X, left is -Y, the bay floor is -Z.
func (q Quadrant) Origin(p AircraftProfile) Vec3 {
	o := Vec3{X: -p.BayLengthM / 2, Y: -p.BayWidthM / 2, Z: -p.BayHeightM / 2}
	if !q.IsFront() {
		o.X = 0
	}
	if !q.IsLeft() {
		o.Y = 0
	}
	return o
}
