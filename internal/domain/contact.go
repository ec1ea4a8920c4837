package domain

// ContactMessage is a contact-form submission to be forwarded by email
type ContactMessage struct {
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	ContactNo string `json:"contactNo" validate:"required,contactno"`
	Message   string `json:"message" validate:"required,max=500,nohtml"`
	Referrer  string `json:"referrer" validate:"max=500,nohtml"`
}
