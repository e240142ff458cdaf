package model

// Lead is a prospective customer's contact information captured for
// sales follow-up. Leads are append-only; there is no update or delete.
type Lead struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}
