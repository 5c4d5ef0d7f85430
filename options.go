package rgba

// Default temperature range for CheckBlackBody, in kelvin.
const (
	DefaultMinKelvin = 1000
	DefaultMaxKelvin = 40000
)

// FormatOptions controls textual color formatting.
type FormatOptions struct {
	// Prefix is written before the hex digits (default is "#").
	// Use "0x" for C-style literals.
	Prefix string
	// OmitOpaqueAlpha writes 6 digits when alpha is 255.
	OmitOpaqueAlpha bool
	// Upper writes upper-case hex digits.
	Upper bool
	// DisablePrefix writes bare hex digits and ignores Prefix.
	DisablePrefix bool
}

// CheckOptions controls black-body input checks.
type CheckOptions struct {
	// MinKelvin is the lower bound of the expected temperature range (default is 1000).
	MinKelvin float64
	// MaxKelvin is the upper bound of the expected temperature range (default is 40000).
	MaxKelvin float64
	// DisableRangeCheck disables the expected temperature range warning.
	DisableRangeCheck bool
	// DisableAlphaCheck disables the warning for temperatures whose
	// visible radiance total does not saturate alpha.
	DisableAlphaCheck bool
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Prefix: "#"}
	}

	out := *o
	if out.DisablePrefix {
		out.Prefix = ""
	} else if out.Prefix == "" {
		out.Prefix = "#"
	}

	return out
}

// normalize normalizes the CheckOptions.
func (o *CheckOptions) normalize() CheckOptions {
	if o == nil {
		return CheckOptions{MinKelvin: DefaultMinKelvin, MaxKelvin: DefaultMaxKelvin}
	}

	out := *o
	if out.MinKelvin <= 0 {
		out.MinKelvin = DefaultMinKelvin
	}
	if out.MaxKelvin <= 0 {
		out.MaxKelvin = DefaultMaxKelvin
	}
	if out.MaxKelvin < out.MinKelvin {
		out.MinKelvin, out.MaxKelvin = out.MaxKelvin, out.MinKelvin
	}

	return out
}
