package utils

import (
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"tms/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Training Cell <%s>\r\n", from)
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

// SendEmailWithAttachments sends an HTML email with the given files attached
// as a multipart MIME message.
func SendEmailWithAttachments(to []string, subject, htmlBody string, attachments []string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	boundary := "tms-mixed-boundary"
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: Training Cell <%s>\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ",")))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary))

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	for _, path := range attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Println("Error reading attachment:", path, err)
			continue
		}
		b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		b.WriteString("Content-Type: application/octet-stream\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", filepath.Base(path)))
		b.WriteString(base64.StdEncoding.EncodeToString(data))
		b.WriteString("\r\n")
	}
	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	auth := smtp.PlainAuth("", from, password, smtpHost)
	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(b.String()))
	if err != nil {
		fmt.Println("Error sending email with attachments:", err)
		return err
	}
	return nil
}

// HTML Wrapper (Professional Look)
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #d7b56d; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TRAINING CELL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Training Cell. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SMTPMailer is the production mailer. Every method returns immediately and
// delivers in the background; delivery failures are logged, never surfaced.
type SMTPMailer struct{}

func (SMTPMailer) SendTraineeApprovedEmail(email, traineeName, comments string) {
	subject := "Training Application Approved"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! Your training application has been <strong>APPROVED</strong>.</p>
		<div class="info-box">%s</div>
		<p>Your instructor will contact you with project details shortly.</p>
	`, traineeName, comments)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Approved", body))
}

func (SMTPMailer) SendTraineeRejectedEmail(email, traineeName, comments string) {
	subject := "Training Application Update"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your training application was not approved.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>You may contact your instructor for further details.</p>
	`, traineeName, comments)

	go SendEmail([]string{email}, subject, getEmailTemplate("Application Update", body))
}

func (SMTPMailer) SendReviewCompletedEmail(email, traineeName, comments string) {
	subject := "Progress Review Signed Off: " + traineeName
	body := fmt.Sprintf(`
		<p>The progress review you shared for <strong>%s</strong> has been signed off by the admin.</p>
		<div class="info-box">%s</div>
	`, traineeName, comments)

	go SendEmail([]string{email}, subject, getEmailTemplate("Review Completed", body))
}

func (SMTPMailer) SendProjectCompletionEmail(to []string, projectTitle, traineeName string, rating, durationDays int, attachments []string) {
	subject := "Project Completed: " + projectTitle
	body := fmt.Sprintf(`
		<p>Project <strong>%s</strong> by trainee <strong>%s</strong> has been completed.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Duration:</strong> %d days</li>
				<li><strong>Performance Rating:</strong> %d/10</li>
			</ul>
		</div>
		<p>The project report and attendance sheet are attached.</p>
	`, projectTitle, traineeName, durationDays, rating)

	go SendEmailWithAttachments(to, subject, getEmailTemplate("Project Completed", body), attachments)
}

// SendOTPEmail mails a one-time code for email verification / password reset.
func SendOTPEmail(email, name, otp string, ttlMinutes int) {
	subject := "Your Verification Code"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your one-time verification code is:</p>
		<div class="info-box" style="font-size: 24px; letter-spacing: 4px; text-align: center;"><strong>%s</strong></div>
		<p>This code expires in %d minutes. Do not share it with anyone.</p>
	`, name, otp, ttlMinutes)

	go SendEmail([]string{email}, subject, getEmailTemplate("Verification Code", body))
}

// SendPendingApprovalsReminderEmail nudges an admin about items waiting on them.
func SendPendingApprovalsReminderEmail(email, name string, pendingTrainees, pendingReviews int64) {
	subject := "Pending Approvals Reminder"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have items waiting for your review:</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Trainee approvals:</strong> %d</li>
				<li><strong>Progress reviews:</strong> %d</li>
			</ul>
		</div>
		<p>Please login to your dashboard to take action.</p>
	`, name, pendingTrainees, pendingReviews)

	go SendEmail([]string{email}, subject, getEmailTemplate("Pending Approvals", body))
}
