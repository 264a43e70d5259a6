package api

import (
	"broadwaylounge/internal/entities"
	"broadwaylounge/internal/errors"
	"net/mail"
	"strconv"
)

// ContactForm carries the raw fields of a contact form post.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Submission validates the form and converts it into an entity. The email
// must be a bare address; display-name forms are rejected.
func (f ContactForm) Submission() (entities.ContactSubmission, *errors.HTTPError) {
	if f.Name == "" {
		return entities.ContactSubmission{}, errors.BadRequest("name is required")
	}
	addr, err := mail.ParseAddress(f.Email)
	if err != nil || addr.Address != f.Email {
		return entities.ContactSubmission{}, errors.BadRequest("a valid email address is required")
	}
	if f.Message == "" {
		return entities.ContactSubmission{}, errors.BadRequest("message is required")
	}
	return entities.ContactSubmission{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}, nil
}

// ReservationForm carries the raw fields of a table reservation post.
// PartySize stays a string until validation parses it.
type ReservationForm struct {
	PartySize string
	Date      string
	Time      string
	Datetime  string
}

// Submission validates the form and converts it into an entity. Datetime
// is optional and travels along unused.
func (f ReservationForm) Submission() (entities.ReservationSubmission, *errors.HTTPError) {
	size, err := strconv.Atoi(f.PartySize)
	if err != nil || size <= 0 {
		return entities.ReservationSubmission{}, errors.BadRequest("partysize must be a positive number")
	}
	if f.Date == "" {
		return entities.ReservationSubmission{}, errors.BadRequest("date is required")
	}
	if f.Time == "" {
		return entities.ReservationSubmission{}, errors.BadRequest("time is required")
	}
	return entities.ReservationSubmission{
		PartySize: size,
		Date:      f.Date,
		Time:      f.Time,
		Datetime:  f.Datetime,
	}, nil
}
