package stream

import (
	"math"

	"github.com/jmgilman/go/resfs/errors"
)

// Vector2 is a two-component float32 vector.
type Vector2 struct {
	X, Y float32
}

// Vector3 is a three-component float32 vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vector4 is a four-component float32 vector.
type Vector4 struct {
	X, Y, Z, W float32
}

// packScale is the largest quantized magnitude of a packed component.
const packScale = math.MaxInt16

func checkMaxAbs(maxAbs float32) error {
	m := float64(maxAbs)
	if !(m > 0) || math.IsInf(m, 0) {
		return errors.Newf(errors.CodeInvalidInput, "packed vector magnitude must be positive and finite, got %v", maxAbs)
	}
	return nil
}

// packComponent quantizes v against maxAbs. Values outside [-maxAbs, maxAbs]
// are clamped and NaN encodes as zero.
func packComponent(v, maxAbs float32) int16 {
	f, m := float64(v), float64(maxAbs)
	if math.IsNaN(f) {
		return 0
	}
	f = max(-m, min(m, f))
	return int16(math.Round(f * packScale / m))
}

func unpackComponent(q int16, maxAbs float32) float32 {
	return float32(float64(q) * float64(maxAbs) / packScale)
}

// PackVector3 quantizes v into three int16 values against maxAbs.
func PackVector3(v Vector3, maxAbs float32) ([3]int16, error) {
	if err := checkMaxAbs(maxAbs); err != nil {
		return [3]int16{}, err
	}
	return [3]int16{
		packComponent(v.X, maxAbs),
		packComponent(v.Y, maxAbs),
		packComponent(v.Z, maxAbs),
	}, nil
}

// UnpackVector3 inverts PackVector3.
func UnpackVector3(q [3]int16, maxAbs float32) (Vector3, error) {
	if err := checkMaxAbs(maxAbs); err != nil {
		return Vector3{}, err
	}
	return Vector3{
		X: unpackComponent(q[0], maxAbs),
		Y: unpackComponent(q[1], maxAbs),
		Z: unpackComponent(q[2], maxAbs),
	}, nil
}
