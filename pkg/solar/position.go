// Package solar computes sun position angles from closed-form approximations
// and derives idealised photovoltaic power and energy estimates from them.
// Declination and equation of time share one sinusoidal phase term, so
// positions are typically within a degree or two of an ephemeris, and
// irradiance is a clear-sky horizontal value with no atmosphere applied.
package solar

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// SolarPosition contains the sun angles and horizontal irradiance for one place and instant
type SolarPosition struct {
	Declination float64 // δ: degrees, roughly [-23.45, 23.45]
	HourAngle   float64 // H: degrees from local solar noon, negative before noon
	Altitude    float64 // α: degrees above the horizon [-90, 90]
	Azimuth     float64 // degrees clockwise from north [0, 360), NaN when Altitude <= 0
	Zenith      float64 // degrees, always 90 - Altitude
	Irradiance  float64 // W/m² on a horizontal surface, 0 when Altitude <= 0
}

// AboveHorizon reports whether the sun is strictly above the horizon
func (p SolarPosition) AboveHorizon() bool {
	return p.Altitude > 0
}

// HasAzimuth reports whether Azimuth holds a defined bearing
func (p SolarPosition) HasAzimuth() bool {
	return !math.IsNaN(p.Azimuth)
}

// DayOfYear returns the 1-based ordinal day of t's UTC calendar date
func DayOfYear(t time.Time) int {
	t = t.UTC()
	return julian.DayOfYearGregorian(t.Year(), int(t.Month()), t.Day())
}

// seasonalPhase is the annual term shared by declination and equation of time
func seasonalPhase(dayOfYear int) unit.Angle {
	return unit.AngleFromDeg(360.0 / 365.0 * float64(dayOfYear-81))
}

// Declination returns the solar declination in degrees for a day of year
func Declination(dayOfYear int) float64 {
	return 23.45 * seasonalPhase(dayOfYear).Sin()
}

// EquationOfTime returns the equation-of-time correction in minutes for a day of year.
// It reuses the declination phase rather than modelling orbital eccentricity.
func EquationOfTime(dayOfYear int) float64 {
	return 7.5 * seasonalPhase(dayOfYear).Sin()
}

// timeOffset returns the minutes to add to the clock hour to get solar time
func timeOffset(dayOfYear int, longitude float64) float64 {
	lstm := 15 * math.Round(longitude/15)
	return EquationOfTime(dayOfYear) + 4*(longitude-lstm)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// azimuth returns the sun's bearing in [0, 360) degrees for declination δ,
// hour angle H and the cosine of the altitude. A zero cosAlt (sun overhead)
// is treated as a zero sine of azimuth.
func azimuth(δ, H unit.Angle, cosAlt float64) float64 {
	var sinAz float64
	if cosAlt != 0 {
		sinAz = clamp(δ.Cos()*H.Sin()/cosAlt, -1, 1)
	}
	az := unit.Angle(math.Asin(sinAz)).Deg()
	if H > 0 {
		az = 180 - az
	} else {
		az = 180 + az
	}
	return math.Mod(az+360, 360)
}

// ParseInstant parses an RFC 3339 timestamp, with or without fractional seconds
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, reject("timestamp", fmt.Errorf("%w %q", ErrInvalidTimestamp, s))
	}
	return t.UTC(), nil
}

func validateInstant(t time.Time) error {
	if t.IsZero() {
		return ErrInvalidTimestamp
	}
	return nil
}

func validateLocation(latitude, longitude float64) error {
	if err := checkRange("latitude", latitude, -90, 90); err != nil {
		return err
	}
	return checkRange("longitude", longitude, -180, 180)
}

// ComputeSolarPotential returns the sun position and horizontal irradiance at
// latitude/longitude (degrees) for instant t, using the default constants
func ComputeSolarPotential(latitude, longitude float64, t time.Time) (SolarPosition, error) {
	return defaultCalculator.ComputeSolarPotential(latitude, longitude, t)
}

// ComputeSolarPotentialAt is ComputeSolarPotential for an RFC 3339 timestamp string
func ComputeSolarPotentialAt(latitude, longitude float64, timestamp string) (SolarPosition, error) {
	t, err := ParseInstant(timestamp)
	if err != nil {
		return SolarPosition{}, err
	}
	return defaultCalculator.ComputeSolarPotential(latitude, longitude, t)
}

// ComputeSolarPotential returns the sun position and horizontal irradiance at
// latitude/longitude (degrees) for instant t. The instant is read in UTC.
func (c *Calculator) ComputeSolarPotential(latitude, longitude float64, t time.Time) (SolarPosition, error) {
	if err := validateLocation(latitude, longitude); err != nil {
		return SolarPosition{}, reject("solar position", err)
	}
	if err := validateInstant(t); err != nil {
		return SolarPosition{}, reject("solar position", err)
	}

	t = t.UTC()
	n := DayOfYear(t)
	declination := Declination(n)

	hour := float64(t.Hour()) + float64(t.Minute())/60.0 + float64(t.Second())/3600.0
	solarTime := hour + timeOffset(n, longitude)/60.0
	hourAngle := 15 * (solarTime - 12)

	φ := unit.AngleFromDeg(latitude)
	δ := unit.AngleFromDeg(declination)
	H := unit.AngleFromDeg(hourAngle)

	// Rounding can push the product sum just past ±1.
	sinAlt := clamp(φ.Sin()*δ.Sin()+φ.Cos()*δ.Cos()*H.Cos(), -1, 1)
	α := unit.Angle(math.Asin(sinAlt))
	altitude := α.Deg()

	pos := SolarPosition{
		Declination: declination,
		HourAngle:   hourAngle,
		Altitude:    altitude,
		Azimuth:     math.NaN(),
		Zenith:      90 - altitude,
	}
	if altitude <= 0 {
		return pos, nil
	}

	pos.Azimuth = azimuth(δ, H, α.Cos())
	pos.Irradiance = math.Max(0, c.config().SolarConstant*α.Sin())

	return pos, nil
}
