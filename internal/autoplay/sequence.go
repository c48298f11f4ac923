// Package autoplay steps the heating-curve temperature at a fixed interval
// until it reaches the end of the curve or is stopped.
package autoplay

import (
	"math"

	"github.com/abhisek/thermoviz/internal/thermo"
)

const (
	// DefaultSpeed is the temperature change per tick in °C.
	DefaultSpeed = 1.0
	MinSpeed     = 0.5
	MaxSpeed     = 5.0
	SpeedStep    = 0.5
)

// Sequence is a pure temperature stepper.
type Sequence struct {
	Temp    float64
	Speed   float64
	Cooling bool
}

// NewSequence starts at temp, clamped to the curve domain. NaN inputs
// fall back to the defaults so the sequence always reaches its bound.
func NewSequence(temp, speed float64, cooling bool) Sequence {
	return Sequence{Temp: thermo.ClampTemperature(temp), Speed: ClampSpeed(speed), Cooling: cooling}
}

// Bound is the temperature the sequence stops at.
func (s Sequence) Bound() float64 {
	if s.Cooling {
		return thermo.MinTemp
	}
	return thermo.MaxTemp
}

// Done reports whether the sequence has reached its bound.
func (s Sequence) Done() bool {
	if s.Cooling {
		return s.Temp <= thermo.MinTemp
	}
	return s.Temp >= thermo.MaxTemp
}

// Next advances one tick. The second result is true when the bound has
// been reached and no further tick should be scheduled.
func (s Sequence) Next() (Sequence, bool) {
	step := ClampSpeed(s.Speed)
	s.Temp = thermo.ClampTemperature(s.Temp)
	if s.Cooling {
		s.Temp = max(s.Temp-step, thermo.MinTemp)
	} else {
		s.Temp = min(s.Temp+step, thermo.MaxTemp)
	}
	return s, s.Done()
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed] without rounding it to
// a SpeedStep. Non-positive or NaN means the default.
func ClampSpeed(speed float64) float64 {
	switch {
	case math.IsNaN(speed) || speed <= 0:
		return DefaultSpeed
	case speed < MinSpeed:
		return MinSpeed
	case speed > MaxSpeed:
		return MaxSpeed
	}
	return speed
}

// Faster returns the next speed setting up.
func Faster(speed float64) float64 { return ClampSpeed(ClampSpeed(speed) + SpeedStep) }

// Slower returns the next speed setting down.
func Slower(speed float64) float64 { return max(ClampSpeed(speed)-SpeedStep, MinSpeed) }
