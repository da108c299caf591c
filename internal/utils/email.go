package utils

import (
	"fmt"
	"log"
	"os"

	"campuseats_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

func sendMail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending email to", to)
	return client.DialAndSend(msg)
}

// SendVendorApprovedEmail notifies an applicant that their store is live.
func SendVendorApprovedEmail(vendor models.Vendor) error {
	body := fmt.Sprintf(`
<h2>Welcome to CampusEats, %s! 🎉</h2>
<p>Your vendor application has been approved. Your store is now visible on the market
and buyers can start ordering from you.</p>
<p>Log in to your dashboard to add products.</p>`, vendor.Name)

	return sendMail(vendor.Email, "Your CampusEats vendor application was approved", body)
}

// SendVendorRejectedEmail notifies an applicant of a rejection and its reason.
func SendVendorRejectedEmail(vendor models.Vendor, reason string) error {
	body := fmt.Sprintf(`
<h2>About your CampusEats application</h2>
<p>Hi %s, unfortunately your vendor application was not approved.</p>
<p><strong>Reason:</strong> %s</p>
<p>You can update your details and apply again at any time.</p>`, vendor.Name, reason)

	return sendMail(vendor.Email, "Your CampusEats vendor application", body)
}
