package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fitflowhq/fitflow/internal/textutil"
)

// Contact handles POST /api/contact. There is no mail backend; accepted
// submissions are validated and logged.
func Contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if strings.TrimSpace(body.Name) == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if !textutil.ValidEmail(body.Email) {
			writeError(w, http.StatusBadRequest, "a valid email is required")
			return
		}
		if strings.TrimSpace(body.Message) == "" {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}

		slog.Info("contact form submission", "name", body.Name, "email", body.Email)
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
	}
}
