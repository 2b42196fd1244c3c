package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/google/uuid"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// CreateTestRequestWithContext builds a request as it looks after
// Authenticate ran for an admin user.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	admin := &models.User{
		ID:         userID,
		Username:   "admin",
		Email:      "admin@taller.test",
		Department: models.DepartmentAdmin,
	}
	return CreateTestRequestAs(method, target, body, admin, pathParams)
}

// CreateTestRequestAs authenticates the request as user, with the same
// claims Authenticate would store.
func CreateTestRequestAs(method, target string, body io.Reader, user *models.User, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	ctx := context.WithValue(req.Context(), middleware.ClaimsContextKey, &models.Claims{UserID: user.ID, Email: user.Email})
	ctx = context.WithValue(ctx, middleware.UserContextKey, user)

	return req.WithContext(ctx)
}

// CreateTestRequestWithoutContext sets path values the way ServeMux would
// and attaches a logger that writes nowhere.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	return req.WithContext(middleware.WithLogger(req.Context(), discardLogger))
}
