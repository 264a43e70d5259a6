package entities

// EmailMessage is the outbound mail payload handed to a sender driver.
type EmailMessage struct {
	Subject  string
	FromName string
	From     string
	To       string
	HTMLBody string
}

// Field is one key/value line of a formatted submission body. A slice of
// fields keeps the line order the form defines, which a map would lose.
type Field struct {
	Key   string
	Value string
}
