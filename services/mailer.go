package services

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"chat-server/config"
)

// SendVerificationEmail mails the verification link to a freshly registered
// user. Callers fire it in a goroutine; a failed send only logs, registration
// is not affected.
func SendVerificationEmail(fullName, email, userID string) {
	from := config.Getenv("EMAIL", "")
	password := config.Getenv("EMAIL_PASSWORD", "")
	if from == "" {
		log.Println("EMAIL not configured, skipping verification email")
		return
	}

	host := config.Getenv("SMTP_HOST", "smtp.gmail.com")
	port, err := strconv.Atoi(config.Getenv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	link := fmt.Sprintf("%s/api/v1/user/verify?id=%s", config.BaseURL(), userID)

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Verification email")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Hi %s, please click here to <a href="%s">Verify</a> your mail.</p>`, fullName, link))

	dialer := gomail.NewDialer(host, port, from, password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Error sending verification email to %s: %v", email, err)
		return
	}
	log.Printf("Verification email sent to %s", email)
}
