package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) SendReservationConfirmation(ctx context.Context, to, name, vehicle, startDate, returnDate string, totalCents int32) error {
	subject := "Reservation confirmed"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation of %s is confirmed.\n\nPickup: %s\nReturn: %s\nTotal: %.2f\n\nBest regards,\nThe AutoRenta Team",
		name, vehicle, startDate, returnDate, float64(totalCents)/100)
	return s.send(to, name, subject, body)
}

func (s *sendgridEmailService) SendCancellationNotice(ctx context.Context, to, name, vehicle string) error {
	subject := "Reservation cancelled"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation of %s has been cancelled.\n\nBest regards,\nThe AutoRenta Team",
		name, vehicle)
	return s.send(to, name, subject, body)
}

func (s *sendgridEmailService) SendReturnReminder(ctx context.Context, to, name, vehicle, returnDate string) error {
	subject := "Vehicle return reminder"
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder that %s is due back on %s.\n\nBest regards,\nThe AutoRenta Team",
		name, vehicle, returnDate)
	return s.send(to, name, subject, body)
}

func (s *sendgridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
