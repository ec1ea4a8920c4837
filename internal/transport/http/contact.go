package http

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/service"
)

type ContactHandler struct {
	notifier service.ContactNotifier
	logger   hclog.Logger
}

func NewContactHandler(n service.ContactNotifier, log hclog.Logger) *ContactHandler {
	return &ContactHandler{notifier: n, logger: log}
}

// SendMessage handles POST /contact
//
// swagger:route POST /contact contact sendContactMessage
//
// Forwards a contact form submission to the shop by email.
//
// Responses:
//
//	200: messageResponse
//	400: validationErrorResponse
//	500: errorResponse
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := decodeJSON(r, &msg); err != nil {
		writeError(w, h.logger, err, "There was an error sending the message.")
		return
	}

	if err := h.notifier.SendContactMessage(r.Context(), msg); err != nil {
		writeError(w, h.logger, err, "There was an error sending the message.")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Your message has been sent successfully!"})
}
