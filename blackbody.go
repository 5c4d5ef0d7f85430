package rgba

import "math"

const (
	// planckScale and planckExponent fold 2hc^2, hc/k and unit scaling
	// so wavelengths in 100nm units combine directly with kelvin.
	planckScale    = 1e10
	planckExponent = 143877.68775

	// bandSteps is the number of intervals sampled per band.
	bandSteps = 100
)

// Wavelength bands in 100nm units.
var (
	visibleBand = [2]float64{3.8, 7.5}
	redBand     = [2]float64{6.0, 7.0}
	greenBand   = [2]float64{5.0, 6.0}
	blueBand    = [2]float64{3.8, 5.0}
)

// band identifies a color band.
type band int

const (
	bandRed band = iota
	bandGreen
	bandBlue
)

// Bands holds mean spectral radiance of a black body per wavelength band.
// Red, Green and Blue are relative to Total.
type Bands struct {
	Total float64 `json:"total" yaml:"total"` // Mean over the whole visible band
	Red   float64 `json:"red" yaml:"red"`     // Red band mean / Total
	Green float64 `json:"green" yaml:"green"` // Green band mean / Total
	Blue  float64 `json:"blue" yaml:"blue"`   // Blue band mean / Total
}

// BlackBody approximates the visible color of an ideal black body at the
// given temperature in kelvin.
//
// Color channels are scaled so the brightest band is 255. Alpha carries
// the unnormalized visible radiance and saturates to 255 for
// temperatures above roughly 1700K. Non-positive or non-finite input is
// not rejected; it flows through float arithmetic and the channel clamp.
func BlackBody(kelvin float64) Color {
	return BlackBodyBands(kelvin).Color()
}

// BlackBodyBands returns band means for the given temperature in kelvin.
func BlackBodyBands(kelvin float64) Bands {
	total := bandMean(visibleBand, kelvin)
	return Bands{
		Total: total,
		Red:   bandMean(redBand, kelvin) / total,
		Green: bandMean(greenBand, kelvin) / total,
		Blue:  bandMean(blueBand, kelvin) / total,
	}
}

// Color normalizes bands by the brightest one.
func (b Bands) Color() Color {
	var peak float64
	switch dominantBand(b.Red, b.Green, b.Blue) {
	case bandRed:
		peak = b.Red
	case bandGreen:
		peak = b.Green
	default:
		peak = b.Blue
	}

	return RGBAFloat64(b.Red/peak, b.Green/peak, b.Blue/peak, b.Total)
}

// dominantBand picks the largest band. Red is checked first, then green
// against blue; comparisons are strict.
func dominantBand(red, green, blue float64) band {
	if red > green && red > blue {
		return bandRed
	}
	if green > blue {
		return bandGreen
	}
	return bandBlue
}

// bandMean samples planck over [lo, hi] at bandSteps+1 points.
// The sum is divided by bandSteps+1.
func bandMean(span [2]float64, kelvin float64) float64 {
	lo, hi := span[0], span[1]

	var sum float64
	for i := 0; i <= bandSteps; i++ {
		wavelength := lo + (hi-lo)*float64(i)/bandSteps
		sum += planck(wavelength, kelvin)
	}

	return sum / (bandSteps + 1)
}

// planck evaluates the simplified, unnormalized Planck law.
func planck(wavelength, kelvin float64) float64 {
	// Same multiplication order as binary exponentiation.
	w2 := wavelength * wavelength
	w5 := wavelength * (w2 * w2)
	return planckScale / (w5 * (math.Exp(planckExponent/(wavelength*kelvin)) - 1))
}
