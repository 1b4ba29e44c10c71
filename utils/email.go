package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

func dialer() (*gomail.Dialer, string) {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}
	return gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	), from
}

// SendEmail sends an HTML email through the configured SMTP relay
func SendEmail(to, subject, body string) error {
	d, from := dialer()

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOTP sends a registration OTP via email
func SendOTP(to, otp string) error {
	body := fmt.Sprintf(`
		<h2>Welcome to MazajMart!</h2>
		<p>Thank you for registering. Please use the following OTP to verify your email address:</p>
		<h1 style="color: #C8102E; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This OTP will expire in 15 minutes.</p>
		<p>If you didn't request this OTP, please ignore this email.</p>
	`, otp)
	return SendEmail(to, "Your MazajMart Registration OTP", body)
}

// SendContactMessage relays a customer-service or careers message to the
// store inbox
func SendContactMessage(topic, name, email, phone, message string) error {
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		inbox = os.Getenv("SMTP_USERNAME")
	}
	body := fmt.Sprintf(`
		<h2>%s</h2>
		<p><b>From:</b> %s &lt;%s&gt;</p>
		<p><b>Phone:</b> %s</p>
		<p>%s</p>
	`, topic, name, email, phone, message)
	return SendEmail(inbox, fmt.Sprintf("[MazajMart] %s from %s", topic, name), body)
}
