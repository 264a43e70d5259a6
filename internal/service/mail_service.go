package service

import (
	"broadwaylounge/internal/config"
	"broadwaylounge/internal/entities"
	"broadwaylounge/internal/utils"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
)

// Sender delivers one email message to the outside world.
type Sender interface {
	Send(ctx context.Context, msg entities.EmailMessage) error
}

// MailService turns form submissions into emails and dispatches them off
// the request path. Delivery is best effort and at most once: a full
// queue drops the message, a failed send is logged and never retried.
type MailService struct {
	sender Sender
	cfg    config.Mail
	queue  chan entities.EmailMessage
	done   chan struct{}
	once   sync.Once
}

// NewMailService starts the dispatch worker.
func NewMailService(sender Sender, cfg config.Mail) *MailService {
	s := &MailService{
		sender: sender,
		cfg:    cfg,
		queue:  make(chan entities.EmailMessage, cfg.QueueSize),
		done:   make(chan struct{}),
	}
	go s.run()
	return s
}

// NotifyContact schedules the email for one contact form submission.
func (s *MailService) NotifyContact(sub entities.ContactSubmission) {
	s.enqueue(entities.EmailMessage{
		Subject: fmt.Sprintf("Contact Form: %s", sub.Name),
		HTMLBody: FormatFields([]entities.Field{
			{Key: "name", Value: sub.Name},
			{Key: "email", Value: sub.Email},
			{Key: "message", Value: sub.Message},
		}),
	})
}

// NotifyReservation schedules the email for one table reservation
// request. The date goes out in long form when it parses, otherwise as
// the visitor typed it.
func (s *MailService) NotifyReservation(sub entities.ReservationSubmission) {
	s.enqueue(entities.EmailMessage{
		Subject: "Table Reservation Request",
		HTMLBody: FormatFields([]entities.Field{
			{Key: "Party Size", Value: strconv.Itoa(sub.PartySize)},
			{Key: "Date", Value: utils.FormatLongDate(sub.Date)},
			{Key: "Time", Value: sub.Time},
		}),
	})
}

func (s *MailService) enqueue(msg entities.EmailMessage) {
	msg.FromName = s.cfg.FromName
	msg.From = s.cfg.SenderEmail
	msg.To = s.cfg.ReceiverEmail

	select {
	case s.queue <- msg:
	default:
		slog.Error("mail queue full, dropping message", "subject", msg.Subject)
	}
}

func (s *MailService) run() {
	defer close(s.done)
	for msg := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
		err := s.sender.Send(ctx, msg)
		cancel()
		if err != nil {
			slog.Error("email send failed", "subject", msg.Subject, "error", err)
			continue
		}
		slog.Info("email sent", "subject", msg.Subject, "to", msg.To)
	}
}

// Close stops intake and waits until every queued message has been
// handed to the sender.
func (s *MailService) Close() {
	s.once.Do(func() { close(s.queue) })
	<-s.done
}
