package utils

import "time"

const (
	dateInputLayout = "2/1/2006"
	dateLongLayout  = "January 02, 2006"
)

// FormatLongDate rewrites a day/month/year date string such as "25/12/2024"
// into its long form, "December 25, 2024". Input that does not parse is
// returned unchanged; a malformed date must never block a submission.
func FormatLongDate(s string) string {
	t, err := time.Parse(dateInputLayout, s)
	if err != nil {
		return s
	}
	return t.Format(dateLongLayout)
}
