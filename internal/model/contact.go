package model

// Submission is a trimmed contact form payload. It is never persisted.
type Submission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type ContactInfo struct {
	Phone       string `json:"phone"`
	PhoneHref   string `json:"phone_href"`
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	ServiceArea string `json:"service_area"`
	Hours       string `json:"hours"`
	SundayNote  string `json:"sunday_note"`
}
