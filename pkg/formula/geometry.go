package formula

import "math"

// CircleMeasures holds the derived measurements of a circle.
type CircleMeasures struct {
	Radius        float64 `json:"radius"`
	Diameter      float64 `json:"diameter"`
	Circumference float64 `json:"circumference"`
	Area          float64 `json:"area"`
}

// Circle derives diameter, circumference and area from a radius.
func Circle(radius float64) (CircleMeasures, error) {
	if err := finite("radius", radius); err != nil {
		return CircleMeasures{}, err
	}
	if radius < 0 {
		return CircleMeasures{}, invalid("radius must not be negative")
	}

	return CircleMeasures{
		Radius:        radius,
		Diameter:      2 * radius,
		Circumference: 2 * math.Pi * radius,
		Area:          math.Pi * radius * radius,
	}, nil
}
