package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactForm(t *testing.T) {
	server := newTestServer(t)

	valid := map[string]string{
		"name":        "María Pérez",
		"email":       "maria@example.com",
		"phone":       "+598 99 123 456",
		"projectType": "Residencial",
		"message":     "Quisiera una cotización para una casa.",
	}

	t.Run("dispatches the inquiry email", func(t *testing.T) {
		w := postJSON(t, server, "/api/contact", valid)
		require.Equal(t, http.StatusOK, w.Code)

		var result ActionResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.Equal(t, "Email sent successfully", result.Message)

		require.Len(t, server.mailer.sent, 1)
		sent := server.mailer.sent[0]
		assert.Equal(t, "Nueva Consulta: Residencial - María Pérez", sent.Subject)
		assert.Contains(t, sent.HTML, "maria@example.com")
		assert.Contains(t, sent.HTML, "Quisiera una cotización para una casa.")
	})

	t.Run("missing fields are rejected before any email", func(t *testing.T) {
		for _, field := range []string{"name", "email", "message", "projectType"} {
			payload := map[string]string{}
			for k, v := range valid {
				payload[k] = v
			}
			delete(payload, field)

			sentBefore := len(server.mailer.sent)
			w := postJSON(t, server, "/api/contact", payload)
			require.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)

			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, "Missing required fields", body["error"])
			assert.Len(t, server.mailer.sent, sentBefore)
		}
	})

	t.Run("phone is optional", func(t *testing.T) {
		payload := map[string]string{}
		for k, v := range valid {
			payload[k] = v
		}
		delete(payload, "phone")

		w := postJSON(t, server, "/api/contact", payload)
		require.Equal(t, http.StatusOK, w.Code)

		sent := server.mailer.sent[len(server.mailer.sent)-1]
		assert.Contains(t, sent.HTML, "No proporcionado")
	})

	t.Run("mailer failure is an internal error", func(t *testing.T) {
		server.mailer.err = errors.New("resend is down")
		defer func() { server.mailer.err = nil }()

		w := postJSON(t, server, "/api/contact", valid)
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body["error"])
	})

	t.Run("script in the message is escaped", func(t *testing.T) {
		payload := map[string]string{}
		for k, v := range valid {
			payload[k] = v
		}
		payload["message"] = `<script>alert("x")</script>`

		w := postJSON(t, server, "/api/contact", payload)
		require.Equal(t, http.StatusOK, w.Code)

		sent := server.mailer.sent[len(server.mailer.sent)-1]
		assert.NotContains(t, sent.HTML, "<script>")
	})
}
