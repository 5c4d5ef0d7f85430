package rgba

import (
	"math"
	"strconv"
)

// IssueLevel represents severity of a check issue.
type IssueLevel string

const (
	// IssueError indicates the input produces no meaningful color.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a usable but questionable result.
	IssueWarning IssueLevel = "warning"
)

// Issue codes reported by CheckBlackBody.
const (
	CodeNonFinite        = "non_finite_temperature"
	CodeNonPositive      = "non_positive_temperature"
	CodeTranslucentAlpha = "translucent_alpha"
	CodeOutsideRange     = "outside_range"
)

// Issue represents a check issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Offending value
}

// CheckBlackBody reports problems with a temperature passed to BlackBody.
// BlackBody accepts any input; callers that need a finite, opaque result
// can use this to reject or flag input first.
func CheckBlackBody(kelvin float64, opt *CheckOptions) []Issue {
	copt := opt.normalize()
	path := formatKelvin(kelvin)

	if math.IsNaN(kelvin) || math.IsInf(kelvin, 0) {
		return []Issue{{Level: IssueError, Code: CodeNonFinite, Message: "temperature is not finite", Path: path}}
	}
	if kelvin <= 0 {
		return []Issue{{Level: IssueError, Code: CodeNonPositive, Message: "temperature must be positive", Path: path}}
	}

	var out []Issue
	if !copt.DisableRangeCheck && (kelvin < copt.MinKelvin || kelvin > copt.MaxKelvin) {
		out = append(out, Issue{Level: IssueWarning, Code: CodeOutsideRange, Message: "temperature outside expected range", Path: path})
	}

	if !copt.DisableAlphaCheck {
		if total := bandMean(visibleBand, kelvin); !(total >= 1) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeTranslucentAlpha, Message: "visible radiance total below 1, alpha is not opaque", Path: path})
		}
	}

	return out
}

// HasErrors reports whether issues contain an IssueError.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Level == IssueError {
			return true
		}
	}

	return false
}

// formatKelvin formats a temperature for issue paths.
func formatKelvin(kelvin float64) string {
	return strconv.FormatFloat(kelvin, 'g', -1, 64) + "K"
}
