package entities

// ContactSubmission holds one contact form submission. It lives for the
// duration of the request plus the email dispatch and is never persisted.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// ReservationSubmission holds one table reservation request. Date keeps
// whatever string the visitor typed; reformatting happens at dispatch time.
type ReservationSubmission struct {
	PartySize int
	Date      string
	Time      string
	Datetime  string
}
