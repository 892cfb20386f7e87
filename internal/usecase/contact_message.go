package usecase

import (
	"enquiry-relay/internal/domain"
	"enquiry-relay/pkg/sanitizer"
	"strings"
)

const enquiryHeading = "Website Enquiry Form Submission"

func textBody(e domain.Enquiry) string {
	lines := []string{
		enquiryHeading,
		"---",
		"Name: " + e.Name,
		"Email: " + e.Email,
	}
	if e.Phone != "" {
		lines = append(lines, "Phone: "+e.Phone)
	}
	lines = append(lines, "Message:", e.Message)
	return strings.Join(lines, "\n")
}

func htmlBody(e domain.Enquiry) string {
	lines := []string{
		"<p><strong>" + enquiryHeading + "</strong></p>",
		`<hr style="border: none; border-top: 1px solid #e5e5e5; margin: 1rem 0;">`,
		"<p><strong>Name:</strong> " + sanitizer.Escape(e.Name) + "</p>",
		"<p><strong>Email:</strong> " + sanitizer.Escape(e.Email) + "</p>",
	}
	if e.Phone != "" {
		lines = append(lines, "<p><strong>Phone:</strong> "+sanitizer.Escape(e.Phone)+"</p>")
	}
	lines = append(lines,
		"<p><strong>Message:</strong></p>",
		"<p>"+sanitizer.Multiline(e.Message)+"</p>",
	)
	return strings.Join(lines, "\n")
}
