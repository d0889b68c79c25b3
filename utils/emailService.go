package utils

import (
	"fams/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendMailFunc sends a raw message through the configured SMTP relay.
// Overridable in tests.
var SendMailFunc = smtp.SendMail

// SendEmail sends an HTML email through the configured SMTP relay.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CSS FARMS Nigeria <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := SendMailFunc(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
			.header { background-color: #2d5a2d; padding: 25px; text-align: center; }
			.header h1 { color: #ffffff; margin: 0; font-size: 22px; letter-spacing: 1px; }
			.content { padding: 35px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #2d5a2d; margin-top: 0; }
			.code-box { background: #f8f9fa; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0; }
			.code { font-size: 32px; font-weight: bold; color: #2d5a2d; letter-spacing: 8px; font-family: monospace; }
			.footer { background-color: #2d5a2d; color: #ffffff; padding: 15px; text-align: center; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CSS FARMS NIGERIA</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; CSS FARMS Nigeria. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendVerificationEmail delivers the registration code. Called synchronously
// so a relay failure surfaces to the registration handler instead of being
// swallowed.
func SendVerificationEmail(email, code string) error {
	subject := "CSS FARMS - Email Verification Code"
	body := fmt.Sprintf(`
		<p>Thank you for registering with CSS FARMS Nigeria. To complete your
		registration, please verify your email address using the code below:</p>
		<div class="code-box">
			<div class="code">%s</div>
		</div>
		<p>This code will expire in 10 minutes. If you didn't request this
		verification, please ignore this email.</p>
	`, code)

	return SendEmail([]string{email}, subject, getEmailTemplate("Email Verification", body))
}

// SendWelcomeEmail tells a newly registered trainee their assigned identifiers.
func SendWelcomeEmail(email, firstName, traineeID, tagNumber, roomNumber, lectureVenue, mealVenue string) {
	subject := "Welcome to the CSS FARMS Training Program"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your registration is complete. Welcome to the CSS FARMS Training Program!</p>
		<div class="code-box">
			<p><strong>Trainee ID:</strong> %s</p>
			<p><strong>Tag Number:</strong> %s</p>
			<p><strong>Room Number:</strong> %s</p>
			<p><strong>Lecture Venue:</strong> %s</p>
			<p><strong>Meal Venue:</strong> %s</p>
		</div>
		<p>Log in to your trainee dashboard to view your training content and announcements.</p>
	`, firstName, traineeID, tagNumber, roomNumber, lectureVenue, mealVenue)

	go SendEmail([]string{email}, subject, getEmailTemplate("Registration Complete", body))
}
