package service

import (
	"broadwaylounge/internal/entities"
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatFields renders an ordered field list as the HTML body of a
// submission email. Keys are title-cased; values arrive straight from the
// form, so they are escaped before they end up inside markup.
func FormatFields(fields []entities.Field) string {
	title := cases.Title(language.English)

	var b strings.Builder
	b.WriteString("<html>\n<body>\n<h2>Form Submission</h2>\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "<p><b>%s:</b> %s</p>\n", title.String(f.Key), html.EscapeString(f.Value))
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
