package inbox

import "regexp"

// otpPattern matches a likely verification code: either a 3+3 digit group
// with an optional hyphen or space separator, or a standalone run of 4 to 8
// digits. The 3+3 form is listed first so it wins wherever both match at the
// same position. This is a heuristic, not a validator; it will happily match
// order numbers and amounts, which is accepted.
var otpPattern = regexp.MustCompile(`\b(\d{3}[-\s]?\d{3}|\d{4,8})\b`)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ExtractOTP returns the first substring of body that looks like a one-time
// passcode, separators preserved, or "" when none is found. Whitespace runs
// (including newlines) are collapsed first because providers sometimes wrap
// codes across lines.
func ExtractOTP(body string) string {
	if body == "" {
		return ""
	}
	clean := whitespaceRuns.ReplaceAllString(body, " ")
	return otpPattern.FindString(clean)
}
