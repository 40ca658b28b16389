package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// SunTimes is the daylight window for one UTC calendar date
type SunTimes struct {
	SunriseMinutes int     // minutes from midnight UTC, -1 in polar day or night
	SunsetMinutes  int     // minutes from midnight UTC, -1 in polar day or night
	DaylightHours  float64 // hours with the sun above the horizon
	PolarDay       bool    // sun never sets
	PolarNight     bool    // sun never rises
}

// SunriseSunset returns sunrise and sunset for the UTC date of date at the given
// latitude and longitude. It uses the same declination and solar time as
// ComputeSolarPotential, so altitude crosses zero at the returned minutes.
// Like ComputeSolarPotential, the clock is read against the zone meridian
// nearest the longitude, which puts solar noon near 12:00 at every longitude.
func SunriseSunset(latitude, longitude float64, date time.Time) (SunTimes, error) {
	if err := validateLocation(latitude, longitude); err != nil {
		return SunTimes{}, reject("sunrise", err)
	}
	if err := validateInstant(date); err != nil {
		return SunTimes{}, reject("sunrise", err)
	}

	n := DayOfYear(date)
	φ := unit.AngleFromDeg(latitude)
	δ := unit.AngleFromDeg(Declination(n))

	// At sunrise/sunset the altitude is zero: cos(H) = -tan(lat) * tan(declination)
	cosH := -φ.Tan() * δ.Tan()

	if cosH < -1.0 {
		return SunTimes{SunriseMinutes: -1, SunsetMinutes: -1, DaylightHours: 24, PolarDay: true}, nil
	}
	if cosH > 1.0 {
		return SunTimes{SunriseMinutes: -1, SunsetMinutes: -1, PolarNight: true}, nil
	}

	hourAngleDeg := unit.Angle(math.Acos(cosH)).Deg()

	// 4 minutes of time per degree of hour angle
	solarNoonUTC := 720.0 - timeOffset(n, longitude)
	sunriseUTC := math.Mod(solarNoonUTC-4*hourAngleDeg+1440, 1440)
	sunsetUTC := math.Mod(solarNoonUTC+4*hourAngleDeg+1440, 1440)

	return SunTimes{
		SunriseMinutes: int(math.Round(sunriseUTC)) % 1440,
		SunsetMinutes:  int(math.Round(sunsetUTC)) % 1440,
		DaylightHours:  2 * hourAngleDeg / 15,
	}, nil
}
