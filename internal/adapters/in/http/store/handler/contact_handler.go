// internal/adapters/in/http/store/handler/contact_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"naturalglow/internal/adapters/out/mail"
)

// ContactHandler forwards contact-form submissions to the shop inbox.
// Intended mount (router side):
// - POST /store/contact
type ContactHandler struct {
	mailer mail.ContactMailerPort
}

func NewContactHandler(mailer mail.ContactMailerPort) http.Handler {
	return &ContactHandler{mailer: mailer}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mailer == nil {
		writeErr(w, http.StatusServiceUnavailable, "contact form is not configured")
		return
	}
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		writeErr(w, http.StatusBadRequest, "email and message are required")
		return
	}

	err := h.mailer.SendContactMessage(r.Context(), mail.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		writeErr(w, http.StatusBadGateway, "failed to send message")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}
