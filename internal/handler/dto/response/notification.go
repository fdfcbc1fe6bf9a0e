package response

import "onvacation-backend/internal/usecase"

type EmailMessageResponse struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func FromEmailMessage(msg *usecase.EmailMessage) *EmailMessageResponse {
	if msg == nil {
		return nil
	}
	return &EmailMessageResponse{To: msg.To, Subject: msg.Subject, Body: msg.Body}
}
