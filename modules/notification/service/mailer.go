package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"team-scheduler/core/logger"
)

const sendgridMailSendURL = "https://api.sendgrid.com/v3/mail/send"

// Mailer delivers a rendered email to one recipient.
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, html string) error
}

// NewMailer returns a SendGrid-backed mailer, or a log-only mailer when no
// API key is configured so local development works without credentials.
func NewMailer(apiKey, fromEmail, fromName string) Mailer {
	if apiKey == "" {
		logger.Warn("Mailer: SENDGRID_API_KEY is not set, email sending is disabled")
		return &disabledMailer{}
	}
	return &sendgridMailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type sendgridMailer struct {
	apiKey    string
	fromEmail string
	fromName  string
	client    *http.Client
}

type sendgridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendgridRequest struct {
	Personalizations []struct {
		To []sendgridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendgridAddress `json:"from"`
	Subject string          `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func (m *sendgridMailer) Send(ctx context.Context, toEmail, toName, subject, html string) error {
	payload := sendgridRequest{
		From:    sendgridAddress{Email: m.fromEmail, Name: m.fromName},
		Subject: subject,
	}
	payload.Personalizations = []struct {
		To []sendgridAddress `json:"to"`
	}{{To: []sendgridAddress{{Email: toEmail, Name: toName}}}}
	payload.Content = []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{{Type: "text/html", Value: html}}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridMailSendURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		logger.Error("Mailer:Send", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, string(respBody))
		logger.Error("Mailer:Send", err)
		return err
	}

	return nil
}

// disabledMailer logs instead of sending. Used when no API key is set.
type disabledMailer struct{}

func (m *disabledMailer) Send(_ context.Context, toEmail, _, subject, _ string) error {
	logger.Info("Mailer: email sending disabled, mocking send", "to", toEmail, "subject", subject)
	return nil
}
