package api

import (
	"broadwaylounge/internal/entities"
	"log/slog"
	"net/http"
)

// MailNotifier schedules submission emails off the request path.
type MailNotifier interface {
	NotifyContact(sub entities.ContactSubmission)
	NotifyReservation(sub entities.ReservationSubmission)
}

// FormHandler serves the two website form endpoints. Both redirect back
// to the page the form lives on; the email goes out after the redirect
// has been written.
type FormHandler struct {
	Mail MailNotifier
}

func NewFormHandler(mail MailNotifier) *FormHandler {
	return &FormHandler{Mail: mail}
}

// SubmitContact handles contact form submissions from contact.html.
func (h *FormHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}
	sub, herr := form.Submission()
	if herr != nil {
		herr.Write(w)
		return
	}

	slog.Info("contact form submission", "name", sub.Name, "email", sub.Email, "message", sub.Message)
	h.Mail.NotifyContact(sub)
	http.Redirect(w, r, "/contact", http.StatusFound)
}

// SubmitReservation handles table reservation submissions from bar.html.
func (h *FormHandler) SubmitReservation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := ReservationForm{
		PartySize: r.PostFormValue("partysize"),
		Date:      r.PostFormValue("date"),
		Time:      r.PostFormValue("time"),
		Datetime:  r.PostFormValue("datetime"),
	}
	sub, herr := form.Submission()
	if herr != nil {
		herr.Write(w)
		return
	}

	slog.Info("reservation form submission",
		"partysize", sub.PartySize, "date", sub.Date, "time", sub.Time, "datetime", sub.Datetime)
	h.Mail.NotifyReservation(sub)
	http.Redirect(w, r, "/bar", http.StatusFound)
}
