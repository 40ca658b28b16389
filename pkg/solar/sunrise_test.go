package solar

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSunriseSunset(t *testing.T) {
	tests := []struct {
		name          string
		date          time.Time
		latitude      float64
		longitude     float64
		polarDay      bool
		polarNight    bool
		sunriseApprox int // UTC minutes, ±5 min tolerance
		sunsetApprox  int
	}{
		{
			name:          "Equator at equinox",
			date:          time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			latitude:      0.0,
			longitude:     0.0,
			sunriseApprox: 360,
			sunsetApprox:  1080,
		},
		{
			name:          "Mid-latitude summer solstice",
			date:          time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			latitude:      45.0,
			longitude:     0.0,
			sunriseApprox: 250,
			sunsetApprox:  1175,
		},
		{
			name:          "Arctic summer (polar day)",
			date:          time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC),
			latitude:      70.0,
			longitude:     25.0,
			polarDay:      true,
			sunriseApprox: -1,
			sunsetApprox:  -1,
		},
		{
			name:          "Arctic winter (polar night)",
			date:          time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC),
			latitude:      70.0,
			longitude:     25.0,
			polarNight:    true,
			sunriseApprox: -1,
			sunsetApprox:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := SunriseSunset(tt.latitude, tt.longitude, tt.date)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if st.PolarDay != tt.polarDay || st.PolarNight != tt.polarNight {
				t.Fatalf("PolarDay=%v PolarNight=%v, expected %v %v", st.PolarDay, st.PolarNight, tt.polarDay, tt.polarNight)
			}

			if tt.polarDay || tt.polarNight {
				if st.SunriseMinutes != -1 || st.SunsetMinutes != -1 {
					t.Errorf("expected polar conditions (sunrise=-1, sunset=-1), got sunrise=%d, sunset=%d",
						st.SunriseMinutes, st.SunsetMinutes)
				}
				if tt.polarDay && st.DaylightHours != 24 {
					t.Errorf("DaylightHours = %v, expected 24", st.DaylightHours)
				}
				if tt.polarNight && st.DaylightHours != 0 {
					t.Errorf("DaylightHours = %v, expected 0", st.DaylightHours)
				}
				return
			}

			tolerance := 5
			if diff := st.SunriseMinutes - tt.sunriseApprox; diff > tolerance || diff < -tolerance {
				t.Errorf("sunrise=%d minutes, expected ~%d minutes (±%d)", st.SunriseMinutes, tt.sunriseApprox, tolerance)
			}
			if diff := st.SunsetMinutes - tt.sunsetApprox; diff > tolerance || diff < -tolerance {
				t.Errorf("sunset=%d minutes, expected ~%d minutes (±%d)", st.SunsetMinutes, tt.sunsetApprox, tolerance)
			}
		})
	}
}

func TestSunriseSunsetMatchesSolarPosition(t *testing.T) {
	// Altitude changes sign across each returned event.
	sites := []struct {
		name      string
		latitude  float64
		longitude float64
	}{
		{name: "Greenwich", latitude: 51.5, longitude: 0},
		{name: "Seattle", latitude: 47.6, longitude: -122.3},
		{name: "Sydney", latitude: -33.9, longitude: 151.2},
	}

	date := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	for _, site := range sites {
		t.Run(site.name, func(t *testing.T) {
			st, err := SunriseSunset(site.latitude, site.longitude, date)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			altitudeAt := func(minutes int) float64 {
				pos, err := ComputeSolarPotential(site.latitude, site.longitude, date.Add(time.Duration(minutes)*time.Minute))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return pos.Altitude
			}

			if a := altitudeAt(st.SunriseMinutes - 20); a > 0 {
				t.Errorf("altitude 20 min before sunrise = %.3f, expected <= 0", a)
			}
			if a := altitudeAt(st.SunriseMinutes + 20); a <= 0 {
				t.Errorf("altitude 20 min after sunrise = %.3f, expected > 0", a)
			}
			if a := altitudeAt(st.SunsetMinutes - 20); a <= 0 {
				t.Errorf("altitude 20 min before sunset = %.3f, expected > 0", a)
			}
			if a := altitudeAt(st.SunsetMinutes + 20); a > 0 {
				t.Errorf("altitude 20 min after sunset = %.3f, expected <= 0", a)
			}
		})
	}
}

func TestSunriseSunsetConsistency(t *testing.T) {
	// Day length at 45°N stays between 4 and 20 hours all year
	for doy := 1; doy <= 365; doy++ {
		date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
		st, err := SunriseSunset(45.0, 0.0, date)
		if err != nil {
			t.Fatalf("day %d: unexpected error: %v", doy, err)
		}

		if st.SunriseMinutes < 0 || st.SunsetMinutes < 0 {
			t.Errorf("day %d: unexpected polar conditions at 45°N", doy)
			continue
		}

		var dayLength int
		if st.SunsetMinutes > st.SunriseMinutes {
			dayLength = st.SunsetMinutes - st.SunriseMinutes
		} else {
			dayLength = (1440 - st.SunriseMinutes) + st.SunsetMinutes // crosses midnight
		}

		if dayLength < 240 || dayLength > 1200 {
			t.Errorf("day %d: unreasonable day length: %d minutes", doy, dayLength)
		}
		if math.Abs(float64(dayLength)-st.DaylightHours*60) > 2 {
			t.Errorf("day %d: day length %d minutes disagrees with DaylightHours %.3f", doy, dayLength, st.DaylightHours)
		}
	}
}

func TestSunriseSunsetValidation(t *testing.T) {
	date := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)

	if _, err := SunriseSunset(-91, 0, date); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("latitude -91: error = %v, expected ErrInvalidArgument", err)
	}
	if _, err := SunriseSunset(0, 181, date); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("longitude 181: error = %v, expected ErrInvalidArgument", err)
	}
	if _, err := SunriseSunset(0, 0, time.Time{}); !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("zero date: error = %v, expected ErrInvalidTimestamp", err)
	}
}
