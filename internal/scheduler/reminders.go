package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pcmclub/courtbook/internal/config"
	"github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/email"
	"github.com/pcmclub/courtbook/internal/metrics"
)

const reminderTimeLayout = "Mon, 02 Jan 2006 15:04"

// RegisterReminderJobs registers the scheduled booking reminder task.
// Bookings starting within the configured window get one reminder email;
// delivery is tracked per booking so a run never re-mails.
func RegisterReminderJobs(database *db.DB, emailClient email.EmailSender, cfg config.RemindersConfig) error {
	if database == nil {
		return fmt.Errorf("reminder jobs require database")
	}

	jobName := "booking_reminders"
	cronExpr := "*/15 * * * *"
	jobLogger := log.With().
		Str("component", "booking_reminders_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		if emailClient == nil {
			jobLogger.Debug().Msg("Reminder job skipped: email client not configured")
			return
		}

		now := time.Now().UTC()
		window := time.Duration(cfg.HoursBefore) * time.Hour
		due, err := database.Queries.ListBookingsForReminder(ctx, dbgen.ListBookingsForReminderParams{
			After:  now,
			Before: now.Add(window),
		})
		if err != nil {
			jobLogger.Error().Err(err).Msg("Failed to load bookings for reminder job")
			return
		}

		for _, b := range due {
			if !b.Email.Valid || strings.TrimSpace(b.Email.String) == "" {
				// Nothing to deliver, but don't keep re-selecting the row.
				if err := database.Queries.MarkBookingReminderSent(ctx, b.ID); err != nil {
					jobLogger.Error().Err(err).Int64("booking_id", b.ID).Msg("Failed to mark reminder handled")
				}
				continue
			}

			subject := fmt.Sprintf("Upcoming booking: %s", b.CourtName)
			body := fmt.Sprintf(
				"Hi %s,\n\nReminder: %s is booked for you from %s to %s.",
				b.FullName, b.CourtName,
				b.StartTime.Format(reminderTimeLayout), b.EndTime.Format(reminderTimeLayout),
			)

			if err := emailClient.Send(ctx, strings.TrimSpace(b.Email.String), subject, body); err != nil {
				metrics.EmailsSentTotal.WithLabelValues("booking_reminder", "error").Inc()
				jobLogger.Error().Err(err).Int64("booking_id", b.ID).Msg("Failed to send booking reminder")
				continue
			}
			metrics.EmailsSentTotal.WithLabelValues("booking_reminder", "sent").Inc()

			if err := database.Queries.MarkBookingReminderSent(ctx, b.ID); err != nil {
				jobLogger.Error().Err(err).Int64("booking_id", b.ID).Msg("Failed to mark reminder sent")
			}
		}
	})
	if err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}
	return nil
}
