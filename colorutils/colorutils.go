package colorutils

import "math"

// RGB is an 8-bit sRGB triple stored as ints, the way catalogs carry it.
type RGB [3]int

// CMYK holds cyan, magenta, yellow and key as percentages in [0,100].
type CMYK [4]float64

// MaxDecimals is the finest precision a float64 percentage can carry.
const MaxDecimals = 15

// Rounding selects how many decimal places Rgb2cmyk keeps.
type Rounding struct {
	Decimals int
}

var (
	// RoundCatalog is used when augmenting an existing catalog.
	RoundCatalog = Rounding{Decimals: 2}
	// RoundChart is used for swatches extracted from a chart image.
	RoundChart = Rounding{Decimals: 0}
)

// Valid reports whether Decimals is within [0,MaxDecimals].
func (r Rounding) Valid() bool {
	return r.Decimals >= 0 && r.Decimals <= MaxDecimals
}

// Apply rounds v half-to-even at the configured precision. Decimals outside
// [0,MaxDecimals] are clamped.
func (r Rounding) Apply(v float64) float64 {
	if r.Decimals <= 0 {
		return math.RoundToEven(v)
	}
	p := math.Pow(10, float64(min(r.Decimals, MaxDecimals)))
	return math.RoundToEven(v*p) / p
}

// Valid reports whether every channel is in [0,255].
func (c RGB) Valid() bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Rgb2cmyk converts an RGB value to CMYK percentages
func Rgb2cmyk(r, g, b int, rounding Rounding) CMYK {
	if r == 0 && g == 0 && b == 0 {
		return CMYK{0, 0, 0, 100}
	}

	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	k := 1 - math.Max(rf, math.Max(gf, bf))

	var c, m, y float64
	// 1-k can still round to zero for near-black input
	if 1-k > 0 {
		c = (1 - rf - k) / (1 - k)
		m = (1 - gf - k) / (1 - k)
		y = (1 - bf - k) / (1 - k)
	}

	return CMYK{
		percent(c, rounding),
		percent(m, rounding),
		percent(y, rounding),
		percent(k, rounding),
	}
}

func percent(v float64, rounding Rounding) float64 {
	v = rounding.Apply(v * 100)
	if v <= 0 {
		// also folds -0 into 0 so it never serializes as "-0"
		return 0
	}
	return math.Min(v, 100)
}

// Cmyk2rgb converts a CMYK color value to RGB
func Cmyk2rgb(cmyk CMYK) RGB {
	var r, g, b float64
	r = 255.0 * (1 - cmyk[0]/100) * (1 - cmyk[3]/100)
	g = 255.0 * (1 - cmyk[1]/100) * (1 - cmyk[3]/100)
	b = 255.0 * (1 - cmyk[2]/100) * (1 - cmyk[3]/100)
	return RGB{int(math.Round(r)), int(math.Round(g)), int(math.Round(b))}
}

// Lab2rgb converts a LAB color value to RGB
func Lab2rgb(lab []float64) RGB {
	var y float64 = (lab[0] + 16) / 116
	var x float64 = lab[1]/500 + y
	var z float64 = y - lab[2]/200
	var r, g, b float64

	if x*x*x > 0.008856 {
		x = 0.95047 * x * x * x
	} else {
		x = 0.95047 * ((x - 16.0/116) / 7.787)
	}
	if y*y*y > 0.008856 {
		y = 1.00000 * (y * y * y)
	} else {
		y = 1.00000 * ((y - 16.0/116) / 7.787)
	}
	if z*z*z > 0.008856 {
		z = 1.08883 * (z * z * z)
	} else {
		z = 1.08883 * ((z - 16.0/116) / 7.787)
	}

	r = x*3.2406 + y*-1.5372 + z*-0.4986
	g = x*-0.9689 + y*1.8758 + z*0.0415
	b = x*0.0557 + y*-0.2040 + z*1.0570

	return RGB{gammaByte(r), gammaByte(g), gammaByte(b)}
}

func gammaByte(v float64) int {
	if v > 0.0031308 {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	} else {
		v = 12.92 * v
	}
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
