package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/pkg/sendGrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	NotifyTechnicianAssigned(ctx context.Context, technicianID uuid.UUID, repairID uuid.UUID) error
	ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	users        repository.UserRepository
	repairs      repository.RepairRepository
	emailService sendGrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, users repository.UserRepository, repairs repository.RepairRepository, emailService sendGrid.EmailService) NotificationService {
	return &notificationService{repo: repo, users: users, repairs: repairs, emailService: emailService}
}

// NotifyTechnicianAssigned e-mails the technician about the ticket and keeps
// a record of the attempt.
func (n *notificationService) NotifyTechnicianAssigned(ctx context.Context, technicianID uuid.UUID, repairID uuid.UUID) error {

	technician, err := n.users.GetUserById(ctx, technicianID)
	if err != nil {
		return fmt.Errorf("failed to load technician: %w", err)
	}

	repair, err := n.repairs.GetRepairByID(ctx, repairID)
	if err != nil {
		return fmt.Errorf("failed to load repair: %w", err)
	}

	req := &models.EmailNotificationRequest{
		To:      technician.Email,
		Subject: fmt.Sprintf("Reparacion asignada: %s %s", repair.Marca.Name, repair.Modelo),
		Content: fmt.Sprintf("Hola %s, se te asigno la reparacion del equipo %s %s del cliente %s. Estatus actual: %s.",
			technician.Nombre, repair.Marca.Name, repair.Modelo, repair.Cliente.Nombre, repair.Estatus),
	}

	notification := &models.Notification{
		RepairID:  uuid.NullUUID{UUID: repairID, Valid: true},
		Recipient: req.To,
		Subject:   req.Subject,
		Content:   req.Content,
		Status:    models.NotificationPending,
	}

	// Save to the database
	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {

		if updateErr := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.NotificationFailed, err.Error()); updateErr != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to record notification failure",
				slog.String("notificationId", notification.ID.String()), slog.String("error", updateErr.Error()))
		}

		return fmt.Errorf("failed to send email: %w", err)
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.NotificationSent, ""); err != nil {
		return fmt.Errorf("notification sent successfully but failed to update notification status: %w", err)
	}

	return nil
}

func (n *notificationService) ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	notifications, total, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch notifications").WithError(err)
	}

	return notifications, total, nil
}
