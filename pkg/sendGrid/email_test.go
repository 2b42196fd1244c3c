package sendGrid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	sendgrid_client "github.com/aaravmahajanofficial/repair-shop-platform/pkg/sendGrid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	apiKey    = "SG.test-api-key"
	fromEmail = "taller@example.com"
	fromName  = "Taller Central"
)

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type mailPayload struct {
	Personalizations []struct {
		To      []address `json:"to"`
		Cc      []address `json:"cc"`
		Bcc     []address `json:"bcc"`
		Subject string    `json:"subject"`
	} `json:"personalizations"`
	From       address  `json:"from"`
	Categories []string `json:"categories"`
	Content    []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

// fakeSendGrid answers every request with status and records the last body.
func fakeSendGrid(t *testing.T, status int, body string) (sendgrid_client.EmailService, *mailPayload, *http.Header) {
	t.Helper()

	got := &mailPayload{}
	headers := &http.Header{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*headers = r.Header.Clone()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(got))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := sendgrid.NewSendClient(apiKey)
	client.Request.BaseURL = srv.URL

	return sendgrid_client.NewEmailServiceWithClient(client, fromEmail, fromName), got, headers
}

func TestNewEmailService(t *testing.T) {
	assert.NotNil(t, sendgrid_client.NewEmailService(apiKey, fromEmail, fromName))
}

func TestEmailService_Send(t *testing.T) {
	t.Run("Success - Technician assignment", func(t *testing.T) {
		svc, got, headers := fakeSendGrid(t, http.StatusAccepted, "")

		err := svc.Send(t.Context(), &models.EmailNotificationRequest{
			To:          "tec1@example.com",
			Subject:     "Reparacion asignada",
			Content:     "Se te asigno la reparacion R-104",
			HTMLContent: "<p>Se te asigno la reparacion <b>R-104</b></p>",
		})

		require.NoError(t, err)
		assert.Equal(t, "Bearer "+apiKey, headers.Get("Authorization"))
		assert.Equal(t, address{Email: fromEmail, Name: fromName}, got.From)
		assert.Equal(t, []string{sendgrid_client.Category}, got.Categories)

		require.Len(t, got.Personalizations, 1)
		p := got.Personalizations[0]
		assert.Equal(t, []address{{Email: "tec1@example.com"}}, p.To)
		assert.Empty(t, p.Cc)
		assert.Empty(t, p.Bcc)
		assert.Equal(t, "Reparacion asignada", p.Subject)

		require.Len(t, got.Content, 2)
		assert.Equal(t, "text/plain", got.Content[0].Type)
		assert.Equal(t, "text/html", got.Content[1].Type)
	})

	t.Run("Success - Copies and no HTML part", func(t *testing.T) {
		svc, got, _ := fakeSendGrid(t, http.StatusAccepted, "")

		err := svc.Send(t.Context(), &models.EmailNotificationRequest{
			To:      "tec2@example.com",
			CC:      []string{"recepcion@example.com", "admin@example.com"},
			BCC:     []string{"archivo@example.com"},
			Subject: "Equipo listo",
			Content: "El equipo de la orden R-88 esta listo",
		})

		require.NoError(t, err)
		require.Len(t, got.Personalizations, 1)
		p := got.Personalizations[0]
		assert.Equal(t, []address{{Email: "recepcion@example.com"}, {Email: "admin@example.com"}}, p.Cc)
		assert.Equal(t, []address{{Email: "archivo@example.com"}}, p.Bcc)
		require.Len(t, got.Content, 1)
		assert.Equal(t, "El equipo de la orden R-88 esta listo", got.Content[0].Value)
	})

	t.Run("Failure - Rejected by SendGrid", func(t *testing.T) {
		svc, _, _ := fakeSendGrid(t, http.StatusBadRequest, `{"errors":[{"message":"Invalid email"}]}`)

		err := svc.Send(t.Context(), &models.EmailNotificationRequest{To: "bad@example.com", Subject: "x", Content: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send email, status code: 400")
		assert.Contains(t, err.Error(), "Invalid email")
	})

	t.Run("Failure - SendGrid down", func(t *testing.T) {
		svc, _, _ := fakeSendGrid(t, http.StatusInternalServerError, "")

		err := svc.Send(t.Context(), &models.EmailNotificationRequest{To: "tec1@example.com", Subject: "x", Content: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code: 500")
	})

	t.Run("Failure - Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		client := sendgrid.NewSendClient(apiKey)
		client.Request.BaseURL = srv.URL
		svc := sendgrid_client.NewEmailServiceWithClient(client, fromEmail, fromName)

		err := svc.Send(t.Context(), &models.EmailNotificationRequest{To: "tec1@example.com", Subject: "x", Content: "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sendgrid request")
	})
}
