package services

import (
	"fmt"
	"strings"
	"sync"

	"prestige-salon-backend/config"
	"prestige-salon-backend/metrics"
	"prestige-salon-backend/models"
	"prestige-salon-backend/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type SMSSender interface {
	SendSMS(to, body string) error
}

type EmailSender interface {
	SendEmail(to, subject, plainText, html string) error
}

// TwilioSender sends SMS through the Twilio messages API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username:   cfg.AccountSID,
			Password:   cfg.AuthToken,
			AccountSid: cfg.AccountSID,
		}),
		from: cfg.FromNumber,
	}
}

func (t *TwilioSender) SendSMS(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	if resp != nil && resp.Sid != nil {
		log.WithField("sid", *resp.Sid).Debug("sms sent")
	}
	return nil
}

// SendGridSender sends email through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridSender(cfg config.SendGridConfig) *SendGridSender {
	return &SendGridSender{
		client: sendgrid.NewSendClient(cfg.APIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
	}
}

func (s *SendGridSender) SendEmail(to, subject, plainText, html string) error {
	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", to), plainText, html)
	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// Notifier tells salon staff about new bookings and contact messages. Sends are best effort:
// they run in the background and never affect the request that triggered them. A channel
// without a sender or recipient is disabled.
type Notifier struct {
	sms   SMSSender
	email EmailSender
	phone string
	inbox string
	wg    sync.WaitGroup
}

func NewNotifier(sms SMSSender, email EmailSender, phone, inbox string) *Notifier {
	return &Notifier{sms: sms, email: email, phone: phone, inbox: inbox}
}

// NewNotifierFromConfig wires Twilio and SendGrid when their credentials are configured.
func NewNotifierFromConfig(cfg config.Config) *Notifier {
	n := &Notifier{inbox: cfg.NotifyEmail}

	switch {
	case !cfg.Twilio.Enabled():
		log.Debug("twilio credentials not set; sms notifications disabled")
	case cfg.NotifyPhone == "":
		log.Debug("SALON_NOTIFY_PHONE not set; sms notifications disabled")
	case !utils.ValidatePhone(cfg.NotifyPhone):
		log.WithField("phone", cfg.NotifyPhone).Warn("SALON_NOTIFY_PHONE is not a valid phone number; sms notifications disabled")
	default:
		n.sms = NewTwilioSender(cfg.Twilio)
		n.phone = utils.CleanPhone(cfg.NotifyPhone)
		if !strings.HasPrefix(n.phone, "+") {
			log.WithField("phone", n.phone).Warn("SALON_NOTIFY_PHONE is not in E.164 format; sms may fail")
		}
	}

	if cfg.SendGrid.Enabled() {
		n.email = NewSendGridSender(cfg.SendGrid)
	} else {
		log.Debug("sendgrid credentials not set; email notifications disabled")
	}
	return n
}

func (n *Notifier) SMSEnabled() bool   { return n != nil && n.sms != nil && n.phone != "" }
func (n *Notifier) EmailEnabled() bool { return n != nil && n.email != nil && n.inbox != "" }

// SendSMS texts the salon phone synchronously.
func (n *Notifier) SendSMS(body string) error {
	if !n.SMSEnabled() {
		return nil
	}
	err := n.sms.SendSMS(n.phone, body)
	record("sms", err)
	return err
}

// BookingCreated texts the salon about a new booking.
func (n *Notifier) BookingCreated(id string, b models.Booking) {
	if !n.SMSEnabled() {
		return
	}
	body := fmt.Sprintf("New booking %s: %s (%s) for %s on %s at %s",
		id, models.Text(b.FullName), models.Text(b.Phone), models.Text(b.ServiceTitle),
		models.Text(b.PreferredDate), models.Text(b.PreferredTime))
	n.async(func() {
		if err := n.SendSMS(body); err != nil {
			log.WithError(err).WithField("booking_id", id).Warn("booking sms failed")
		}
	})
}

// ContactReceived forwards a contact message to the salon inbox.
func (n *Notifier) ContactReceived(id string, m models.ContactMessage) {
	if !n.EmailEnabled() {
		return
	}
	subject := "Contact form: " + models.Text(m.Subject)
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\n", models.Text(m.FullName))
	if m.Email != nil {
		fmt.Fprintf(&sb, "Email: %s\n", *m.Email)
	}
	if m.Phone != nil {
		fmt.Fprintf(&sb, "Phone: %s\n", *m.Phone)
	}
	fmt.Fprintf(&sb, "\n%s\n", models.Text(m.Message))
	plain := sb.String()

	n.async(func() {
		err := n.email.SendEmail(n.inbox, subject, plain, "")
		record("email", err)
		if err != nil {
			log.WithError(err).WithField("contact_id", id).Warn("contact email failed")
		}
	})
}

// Wait blocks until background sends have finished.
func (n *Notifier) Wait() {
	if n != nil {
		n.wg.Wait()
	}
}

func (n *Notifier) async(fn func()) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		fn()
	}()
}

func record(channel string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	metrics.Notifications.WithLabelValues(channel, status).Inc()
}
