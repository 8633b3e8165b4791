package openmeteo

// Hourly variable names as used by the Open-Meteo marine and weather APIs.
// These double as the keys of the merged canonical series.
const (
	VarWaveHeight    = "wave_height"
	VarWaveDirection = "wave_direction"
	VarWavePeriod    = "wave_period"

	VarWindWaveHeight    = "wind_wave_height"
	VarWindWaveDirection = "wind_wave_direction"
	VarWindWavePeriod    = "wind_wave_period"

	VarSwellHeight    = "swell_wave_height"
	VarSwellDirection = "swell_wave_direction"
	VarSwellPeriod    = "swell_wave_period"

	VarSwell2Height    = "secondary_swell_wave_height"
	VarSwell2Direction = "secondary_swell_wave_direction"
	VarSwell2Period    = "secondary_swell_wave_period"

	VarSeaLevel = "sea_level_height_msl"
	VarSST      = "sea_surface_temperature"

	VarCurrentVelocity  = "ocean_current_velocity"
	VarCurrentDirection = "ocean_current_direction"

	VarWindSpeed     = "wind_speed_10m"
	VarWindDirection = "wind_direction_10m"
	VarWindGusts     = "wind_gusts_10m"
)

// MarineAll is the full variable set requested from the base "auto" model.
var MarineAll = []string{
	VarWaveHeight, VarWaveDirection, VarWavePeriod,
	VarWindWaveHeight, VarWindWaveDirection, VarWindWavePeriod,
	VarSwellHeight, VarSwellDirection, VarSwellPeriod,
	VarSwell2Height, VarSwell2Direction, VarSwell2Period,
	VarSeaLevel,
	VarSST,
	VarCurrentVelocity, VarCurrentDirection,
}

// MarineWaves is the wave-family subset refetched when the user selects an
// explicit wave model.
var MarineWaves = []string{
	VarWaveHeight, VarWaveDirection, VarWavePeriod,
	VarWindWaveHeight, VarWindWaveDirection, VarWindWavePeriod,
	VarSwellHeight, VarSwellDirection, VarSwellPeriod,
	VarSwell2Height, VarSwell2Direction, VarSwell2Period,
	VarSeaLevel,
}

// MarineSST and MarineCurrents are the single-group fallback fetches.
var (
	MarineSST      = []string{VarSST}
	MarineCurrents = []string{VarCurrentVelocity, VarCurrentDirection}
)

// WeatherHourlyVars is the fixed variable set requested from the weather API.
var WeatherHourlyVars = []string{VarWindSpeed, VarWindDirection, VarWindGusts}
