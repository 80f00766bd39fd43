package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"skillup/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillUp <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #43A047; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLUP</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillUp. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to SkillUp! Your account is ready.</p>
		<p>Browse the catalog, enroll in a course and start learning today.</p>
	`, name)

	go SendEmail([]string{email}, "Welcome to SkillUp", getEmailTemplate("Welcome Aboard", body))
}

// SendEnrollmentEmail confirms a new course enrollment
func SendEnrollmentEmail(email, userName, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Track your progress and complete all lessons to earn your certificate.</p>
	`, userName, courseTitle)

	go SendEmail([]string{email}, "Course Enrollment Confirmation - SkillUp", getEmailTemplate("Enrollment Successful", body))
}

// SendCertificateEmail notifies a student that their certificate was issued
func SendCertificateEmail(email, userName, courseTitle, certUID string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Your certificate ID:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>You can share this ID for public verification of your achievement.</p>
	`, userName, courseTitle, certUID)

	go SendEmail([]string{email}, "Course Completion Certificate - SkillUp", getEmailTemplate("Certificate of Completion", body))
}
