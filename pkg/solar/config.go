package solar

const (
	// SolarConstant is the extraterrestrial irradiance used for the horizontal estimate, in W/m²
	SolarConstant = 1367.0

	// DefaultPerformanceRatio is the fraction of theoretical energy assumed to survive
	// real-world losses when the caller does not supply one
	DefaultPerformanceRatio = 0.75
)

// Config holds the tunable constants used by a Calculator
type Config struct {
	SolarConstant           float64 `json:"solar_constant"`
	DefaultPerformanceRatio float64 `json:"default_performance_ratio"`
}

// DefaultConfig returns the constants used by the package-level functions
func DefaultConfig() Config {
	return Config{
		SolarConstant:           SolarConstant,
		DefaultPerformanceRatio: DefaultPerformanceRatio,
	}
}

// Validate checks that the solar constant is a positive finite value and the
// default performance ratio lies in [0, 1]
func (c Config) Validate() error {
	if err := checkPositive("solar constant", c.SolarConstant); err != nil {
		return err
	}
	return checkRange("default performance ratio", c.DefaultPerformanceRatio, 0, 1)
}

// Calculator evaluates solar position, panel power and energy estimates
// against a fixed Config. A Calculator is immutable and safe for concurrent use.
// The zero value, like a nil *Calculator, uses DefaultConfig.
type Calculator struct {
	cfg Config
}

var defaultCalculator = &Calculator{cfg: DefaultConfig()}

// NewCalculator returns a Calculator for cfg, or an error if cfg is invalid
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{cfg: cfg}, nil
}

// Config returns the constants the calculator evaluates with
func (c *Calculator) Config() Config {
	return c.config()
}

func (c *Calculator) config() Config {
	if c == nil || c.cfg == (Config{}) {
		return DefaultConfig()
	}
	return c.cfg
}
