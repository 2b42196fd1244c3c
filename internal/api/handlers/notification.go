package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	service "github.com/aaravmahajanofficial/repair-shop-platform/internal/services"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils/response"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications godoc
//	@Summary		List sent notifications
//	@Description	E-mails sent to technicians, newest first. Admin only.
//	@Tags			Notifications
//	@Produce		json
//	@Param			page		query		int													false	"Page number (default: 1)"
//	@Param			pageSize	query		int													false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Notification}	"Notifications"
//	@Failure		401			{object}	response.ErrorResponse								"Authentication required"
//	@Failure		403			{object}	response.ErrorResponse								"Admin only"
//	@Security		BearerAuth
//	@Router			/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := pagination(r)

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewPage(notifications, total, page, pageSize))
	}
}
