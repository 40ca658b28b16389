package solar

// EstimateEnergyProduced returns the energy in kWh produced by a panel of
// area m² and efficiency [0,1] over periodHours at a pre-averaged irradiance
// of avgIrradiance W/m², scaled by performanceRatio [0,1].
//
// Unlike ComputePanelPower, a negative average irradiance is rejected.
// Area, average irradiance and period must also be finite.
func EstimateEnergyProduced(area, efficiency, avgIrradiance, periodHours, performanceRatio float64) (float64, error) {
	return defaultCalculator.EstimateEnergyProduced(area, efficiency, avgIrradiance, periodHours, performanceRatio)
}

// EstimateEnergyProducedDefault is EstimateEnergyProduced with DefaultPerformanceRatio
func EstimateEnergyProducedDefault(area, efficiency, avgIrradiance, periodHours float64) (float64, error) {
	return defaultCalculator.EstimateEnergyProducedDefault(area, efficiency, avgIrradiance, periodHours)
}

// EstimateEnergyProduced returns the energy in kWh. See the package-level EstimateEnergyProduced.
func (c *Calculator) EstimateEnergyProduced(area, efficiency, avgIrradiance, periodHours, performanceRatio float64) (float64, error) {
	checks := []error{
		checkNonNegative("area", area),
		checkRange("efficiency", efficiency, 0, 1),
		checkNonNegative("average irradiance", avgIrradiance),
		checkRange("performance ratio", performanceRatio, 0, 1),
		checkPositive("period hours", periodHours),
	}
	for _, err := range checks {
		if err != nil {
			return 0, reject("energy estimate", err)
		}
	}

	// W·h/m² accumulated over the period, converted to kWh/m²
	kWhPerM2 := avgIrradiance * periodHours / 1000
	return area * efficiency * kWhPerM2 * performanceRatio, nil
}

// EstimateEnergyProducedDefault applies the calculator's configured default performance ratio
func (c *Calculator) EstimateEnergyProducedDefault(area, efficiency, avgIrradiance, periodHours float64) (float64, error) {
	return c.EstimateEnergyProduced(area, efficiency, avgIrradiance, periodHours, c.config().DefaultPerformanceRatio)
}
