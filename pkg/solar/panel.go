package solar

import (
	"math"
	"time"
)

// Panel describes a photovoltaic installation
type Panel struct {
	AreaM2     float64 `json:"area_m2"`
	Efficiency float64 `json:"efficiency"`
	// PerformanceRatio overrides DefaultPerformanceRatio for energy estimates when set
	PerformanceRatio *float64 `json:"performance_ratio,omitempty"`
}

// ComputePanelPower returns instantaneous electrical output in watts for a
// panel of area m² and efficiency [0,1] under irradiance W/m².
// Irradiance at or below zero, -Inf included, yields 0 W rather than an error.
// NaN and +Inf irradiance have no finite power and are rejected.
func ComputePanelPower(area, efficiency, irradiance float64) (float64, error) {
	return defaultCalculator.ComputePanelPower(area, efficiency, irradiance)
}

// ComputePanelPower returns instantaneous electrical output in watts.
// See the package-level ComputePanelPower.
func (c *Calculator) ComputePanelPower(area, efficiency, irradiance float64) (float64, error) {
	if err := checkNonNegative("area", area); err != nil {
		return 0, reject("panel power", err)
	}
	if err := checkRange("efficiency", efficiency, 0, 1); err != nil {
		return 0, reject("panel power", err)
	}
	if math.IsNaN(irradiance) || math.IsInf(irradiance, 1) {
		return 0, reject("panel power", invalidArgument("irradiance %v must be finite", irradiance))
	}

	if irradiance <= 0 {
		return 0, nil
	}
	return area * efficiency * irradiance, nil
}

// Power returns the panel's output in watts under irradiance W/m².
// It uses DefaultConfig; see Calculator.PanelPower for other constants.
func (p Panel) Power(irradiance float64) (float64, error) {
	return defaultCalculator.PanelPower(p, irradiance)
}

// PowerAt computes the sun position at latitude/longitude and instant t and
// returns the panel's output under the resulting horizontal irradiance.
// It uses DefaultConfig; see Calculator.PanelPowerAt for other constants.
func (p Panel) PowerAt(latitude, longitude float64, t time.Time) (float64, SolarPosition, error) {
	return defaultCalculator.PanelPowerAt(p, latitude, longitude, t)
}

// Energy returns the kWh the panel produces over periodHours at an average
// irradiance of avgIrradiance W/m². Without a PerformanceRatio it applies
// DefaultConfig's; see Calculator.PanelEnergy for other constants.
func (p Panel) Energy(avgIrradiance, periodHours float64) (float64, error) {
	return defaultCalculator.PanelEnergy(p, avgIrradiance, periodHours)
}

// PanelPower returns p's output in watts under irradiance W/m²
func (c *Calculator) PanelPower(p Panel, irradiance float64) (float64, error) {
	return c.ComputePanelPower(p.AreaM2, p.Efficiency, irradiance)
}

// PanelPowerAt returns p's output under the horizontal irradiance this
// calculator computes at latitude/longitude and instant t
func (c *Calculator) PanelPowerAt(p Panel, latitude, longitude float64, t time.Time) (float64, SolarPosition, error) {
	pos, err := c.ComputeSolarPotential(latitude, longitude, t)
	if err != nil {
		return 0, SolarPosition{}, err
	}
	watts, err := c.PanelPower(p, pos.Irradiance)
	if err != nil {
		return 0, SolarPosition{}, err
	}
	return watts, pos, nil
}

// PanelEnergy returns the kWh p produces over periodHours at avgIrradiance W/m²,
// using the calculator's default performance ratio when p has none
func (c *Calculator) PanelEnergy(p Panel, avgIrradiance, periodHours float64) (float64, error) {
	if p.PerformanceRatio == nil {
		return c.EstimateEnergyProducedDefault(p.AreaM2, p.Efficiency, avgIrradiance, periodHours)
	}
	return c.EstimateEnergyProduced(p.AreaM2, p.Efficiency, avgIrradiance, periodHours, *p.PerformanceRatio)
}
