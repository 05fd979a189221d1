package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/metrics"
)

const sendTimeout = 5 * time.Second

const timeLayout = "Mon, 02 Jan 2006 15:04"

// Notification is a composed message for one member.
type Notification struct {
	Kind    string
	Subject string
	Body    string
}

// BookingConfirmation builds the message sent after a successful booking.
func BookingConfirmation(courtName string, b dbgen.Booking) Notification {
	return Notification{
		Kind:    "booking_confirmation",
		Subject: fmt.Sprintf("Booking confirmed: %s", courtName),
		Body: fmt.Sprintf(
			"Your booking for %s from %s to %s is confirmed.\nTotal charged to your wallet: %d.",
			courtName, b.StartTime.Format(timeLayout), b.EndTime.Format(timeLayout), b.TotalPrice,
		),
	}
}

// CancellationNotice builds the message sent after a refunded cancellation.
func CancellationNotice(courtName string, refund int64) Notification {
	return Notification{
		Kind:    "booking_cancellation",
		Subject: fmt.Sprintf("Booking cancelled: %s", courtName),
		Body: fmt.Sprintf(
			"Your booking for %s was cancelled.\nRefunded to your wallet: %d.",
			courtName, refund,
		),
	}
}

// GroupConfirmedNotice builds the message sent to the creator when every
// share is paid and the court booking exists.
func GroupConfirmedNotice(courtName string, g dbgen.GroupBooking) Notification {
	return Notification{
		Kind:    "group_confirmed",
		Subject: fmt.Sprintf("Group booking confirmed: %s", courtName),
		Body: fmt.Sprintf(
			"All shares are paid. %s is booked for your group from %s to %s.",
			courtName, g.StartTime.Format(timeLayout), g.EndTime.Format(timeLayout),
		),
	}
}

// Notify sends the notification to the member asynchronously. Delivery is
// best effort: missing client, missing member email, or SES failure never
// affects the operation that triggered the mail.
func Notify(ctx context.Context, q *dbgen.Queries, client EmailSender, memberID int64, n Notification, logger *zerolog.Logger) {
	if client == nil || q == nil {
		return
	}
	if n.Subject == "" || n.Body == "" {
		return
	}

	member, err := q.GetMemberByID(ctx, memberID)
	if err != nil {
		if logger != nil {
			logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to load member for notification email")
		}
		return
	}
	if !member.Email.Valid {
		return
	}
	recipient := strings.TrimSpace(member.Email.String)
	if recipient == "" {
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := client.Send(sendCtx, recipient, n.Subject, n.Body); err != nil {
			metrics.EmailsSentTotal.WithLabelValues(n.Kind, "error").Inc()
			if logger != nil {
				logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send notification email")
			}
			return
		}
		metrics.EmailsSentTotal.WithLabelValues(n.Kind, "sent").Inc()
	}()
}
