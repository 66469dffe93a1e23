package thermo

// Working-fluid property constants. Shared defaults only; each model takes
// them through its config struct so tests can override per scenario.
const (
	CPAir        = 1.005  // kJ/(kg·K) specific heat of air at constant pressure
	GammaAir     = 1.4    // ratio of specific heats for air
	RAir         = 0.287  // kJ/(kg·K) gas constant for air
	CPSteam      = 2.01   // kJ/(kg·K) approx for superheated steam
	HfgWater     = 2257.0 // kJ/kg latent heat of vaporization
	CPWater      = 4.186  // kJ/(kg·K) specific heat of liquid water
	KelvinOffset = 273.15
)

// CelsiusToKelvin converts a temperature in degrees Celsius to Kelvin.
func CelsiusToKelvin(c float64) float64 { return c + KelvinOffset }

// KelvinToCelsius converts a temperature in Kelvin to degrees Celsius.
func KelvinToCelsius(k float64) float64 { return k - KelvinOffset }
