package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"prestige-salon-backend/models"
	"prestige-salon-backend/store"
	"prestige-salon-backend/utils"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DigestService texts the salon a daily summary of pending bookings for the day.
type DigestService struct {
	store    store.Store
	notifier *Notifier
	now      func() time.Time
	cron     *cron.Cron
}

func NewDigestService(s store.Store, n *Notifier) *DigestService {
	return &DigestService{store: s, notifier: n, now: time.Now}
}

// Start schedules the digest with a standard five-field cron spec.
func (d *DigestService) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, d.run); err != nil {
		return fmt.Errorf("schedule digest %q: %w", spec, err)
	}
	c.Start()
	d.cron = c
	log.WithField("schedule", spec).Info("booking digest scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (d *DigestService) Stop() {
	if d.cron != nil {
		<-d.cron.Stop().Done()
	}
}

func (d *DigestService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := d.SendDailyDigest(ctx); err != nil {
		log.WithError(err).Error("booking digest failed")
	}
}

// PendingToday returns pending bookings whose preferred date is today, in insertion order.
// Bookings with unparseable dates are skipped.
func (d *DigestService) PendingToday(ctx context.Context) ([]store.Document, error) {
	docs, err := d.store.GetDocuments(ctx, store.KindBooking)
	if err != nil {
		return nil, err
	}
	now := d.now()
	var out []store.Document
	for _, doc := range docs {
		if text(doc, "status") != models.DefaultBookingStatus {
			continue
		}
		if utils.IsSameDay(text(doc, "preferred_date"), now) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// SendDailyDigest sends the summary. Nothing is sent when there are no pending bookings.
func (d *DigestService) SendDailyDigest(ctx context.Context) error {
	log.Info("starting booking digest")
	if !d.notifier.SMSEnabled() {
		log.Info("sms disabled; skipping booking digest")
		return nil
	}
	bookings, err := d.PendingToday(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		log.Info("no pending bookings today")
		return nil
	}
	return d.notifier.SendSMS(formatDigest(bookings))
}

func formatDigest(bookings []store.Document) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Prestige: %d pending booking(s) today", len(bookings))
	for _, b := range bookings {
		fmt.Fprintf(&sb, "\n%s %s - %s (%s)",
			text(b, "preferred_time"), text(b, "full_name"), text(b, "service_title"), text(b, "phone"))
	}
	return sb.String()
}

func text(doc store.Document, field string) string {
	s, _ := doc[field].(string)
	return s
}
