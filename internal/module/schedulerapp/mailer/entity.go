package mailer

type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type SendEmailRequest struct {
	Sender     Contact                `json:"sender"`
	To         []Contact              `json:"to"`
	Subject    string                 `json:"subject,omitempty"`
	TemplateID int64                  `json:"templateId,omitempty"`
	Params     map[string]interface{} `json:"params,omitempty"`
}

type SendEmailResponse struct {
	MessageID string `json:"messageId"`
}
