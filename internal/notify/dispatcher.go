// internal/notify/dispatcher.go

// Package notify delivers submission confirmations over email (SES or
// SMTP) and optionally SMS (SNS). Dispatch never returns an error: a
// notification outage must not fail the save that triggered it, so
// failures are reported through the Result status and logs only.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"admissions-backend/internal/common/config"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/common/metrics"
	"admissions-backend/internal/models"
)

// Dispatch outcome statuses.
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

// Email providers.
const (
	ProviderSES  = "ses"
	ProviderSMTP = "smtp"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Result describes one dispatch attempt.
type Result struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"`
	SentAt         string `json:"sentAt"`
}

// Dispatcher sends submission confirmations. The channel clients are
// interfaces so tests can swap in function-field mocks; smtpSend is a
// function field for the same reason.
type Dispatcher struct {
	config    *config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
	smtpSend  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewDispatcher wires the dispatcher. sesClient and snsClient may be
// nil when their channel is disabled or the provider is SMTP.
func NewDispatcher(cfg *config.NotificationConfig, log logger.Logger, sesClient SESService, snsClient SNSService) *Dispatcher {
	return &Dispatcher{
		config:    cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notify"}),
		sesClient: sesClient,
		snsClient: snsClient,
		smtpSend:  smtp.SendMail,
	}
}

// Dispatch sends the confirmation for a submitted application to its
// applicant. Both channels are attempted independently; the result is
// "sent" when at least one succeeded, "failed" when every attempted
// channel errored, and "disabled" when no channel was applicable.
func (d *Dispatcher) Dispatch(ctx context.Context, applicant *models.User, app *models.Application) *Result {
	result := &Result{
		NotificationID: uuid.New().String(),
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.GetDuration(d.config.Timeout))
		defer cancel()
	}

	email, mobile := recipientContact(applicant, app)
	if email == "" && mobile == "" {
		d.logger.Warn("no recipient contact for submission confirmation", map[string]interface{}{
			"userId": app.UserID,
		})
		result.Status = StatusDisabled
		metrics.NotificationsDispatched.WithLabelValues(result.Status).Inc()
		return result
	}

	emailSent := false
	smsSent := false
	attempted := false

	if d.config.Email.Enabled && email != "" {
		attempted = true
		if err := d.sendEmail(ctx, email, applicant, app); err != nil {
			d.logger.Error("email send failed", map[string]interface{}{
				"error":  err.Error(),
				"email":  email,
				"userId": app.UserID,
			})
		} else {
			emailSent = true
		}
	}

	if d.config.SMS.Enabled && mobile != "" && d.snsClient != nil {
		attempted = true
		if err := d.sendSMS(ctx, mobile, applicant, app); err != nil {
			d.logger.Error("SMS send failed", map[string]interface{}{
				"error":  err.Error(),
				"phone":  mobile,
				"userId": app.UserID,
			})
		} else {
			smsSent = true
		}
	}

	switch {
	case emailSent || smsSent:
		result.Status = StatusSent
	case attempted:
		result.Status = StatusFailed
	default:
		result.Status = StatusDisabled
	}

	metrics.NotificationsDispatched.WithLabelValues(result.Status).Inc()
	d.logger.Info("submission confirmation dispatched", map[string]interface{}{
		"notificationId":    result.NotificationID,
		"status":            result.Status,
		"applicationNumber": app.ApplicationNumber,
	})
	return result
}

// recipientContact resolves the delivery addresses, preferring the
// contact details entered on the form over the registration record.
func recipientContact(applicant *models.User, app *models.Application) (email, mobile string) {
	if v, ok := app.Sections["studentEmail"].(string); ok && strings.TrimSpace(v) != "" {
		email = strings.TrimSpace(v)
	}
	if v, ok := app.Sections["studentMobile"].(string); ok && strings.TrimSpace(v) != "" {
		mobile = strings.TrimSpace(v)
	}
	if applicant != nil {
		if email == "" {
			email = applicant.Email
		}
		if mobile == "" {
			mobile = applicant.Mobile
		}
	}
	return email, mobile
}

func (d *Dispatcher) sendEmail(ctx context.Context, to string, applicant *models.User, app *models.Application) error {
	html, err := RenderSummaryHTML(applicant, app)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	text := RenderSummaryText(applicant, app)

	switch d.config.Email.Provider {
	case ProviderSMTP:
		return d.sendViaSMTP(ctx, to, EmailSubject, html)
	case ProviderSES, "":
		if d.sesClient == nil {
			return fmt.Errorf("ses client not configured")
		}
		_, err := d.sesClient.SendEmail(ctx, &ses.SendEmailInput{
			Destination: &types.Destination{
				ToAddresses: []string{to},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: aws.String(EmailSubject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(text)},
					Html: &types.Content{Data: aws.String(html)},
				},
			},
			Source: aws.String(d.config.Email.FromEmail),
		})
		return err
	default:
		return fmt.Errorf("unknown email provider: %s", d.config.Email.Provider)
	}
}

func (d *Dispatcher) sendViaSMTP(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before sending email: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("From: \"Sasurie College of Engineering\" <%s>\r\n", d.config.Email.FromEmail))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", to))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", d.config.SMTP.Host, d.config.SMTP.Port)
	var auth smtp.Auth
	if d.config.SMTP.Username != "" && d.config.SMTP.Password != "" {
		auth = smtp.PlainAuth("", d.config.SMTP.Username, d.config.SMTP.Password, d.config.SMTP.Host)
	}
	return d.smtpSend(addr, auth, d.config.Email.FromEmail, []string{to}, []byte(builder.String()))
}

func (d *Dispatcher) sendSMS(ctx context.Context, to string, applicant *models.User, app *models.Application) error {
	_, err := d.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(RenderSummaryText(applicant, app)),
	})
	return err
}
