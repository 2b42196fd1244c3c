package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/metrics"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// bulkWorkers bounds the status updates in flight for one bulk request.
const bulkWorkers = 8

type RepairService interface {
	CreateRepair(ctx context.Context, req *models.RepairRequest) (*models.Repair, error)
	GetRepair(ctx context.Context, id uuid.UUID) (*models.Repair, error)
	ListRepairs(ctx context.Context) ([]*models.Repair, error)
	UpdateRepair(ctx context.Context, id uuid.UUID, req *models.RepairRequest) (*models.Repair, error)
	DeleteRepair(ctx context.Context, id uuid.UUID) error
	BulkUpdateStatus(ctx context.Context, req *models.BulkStatusRequest) (*models.BulkStatusResult, error)
}

type repairService struct {
	repo     repository.RepairRepository
	notifier NotificationService
	clock    func() time.Time
}

// NewRepairService accepts a nil notifier, in which case technicians are not
// e-mailed.
func NewRepairService(repo repository.RepairRepository, notifier NotificationService, clock func() time.Time) RepairService {
	if clock == nil {
		clock = time.Now
	}

	return &repairService{repo: repo, notifier: notifier, clock: clock}
}

func (s *repairService) repairFromRequest(req *models.RepairRequest) *models.Repair {
	repair := &models.Repair{
		RecepcionID:      req.RecepcionID,
		ClienteID:        req.ClienteID,
		MarcaID:          req.MarcaID,
		Modelo:           utils.SanitizeText(req.Modelo),
		TipoBloqueo:      req.TipoBloqueo,
		Contrasena:       req.Contrasena,
		FechaIngreso:     req.FechaIngreso,
		HoraIngreso:      req.HoraIngreso,
		FechaProgramada:  req.FechaProgramada,
		HoraProgramada:   req.HoraProgramada,
		FechaDiagnostico: req.FechaDiagnostico,
		Estatus:          req.Estatus,
		Adelanto:         req.Adelanto,
		Sim:              req.Sim,
		Manipulado:       req.Manipulado,
		Mojado:           req.Mojado,
		Apagado:          req.Apagado,
		PantallaRota:     req.PantallaRota,
		TapaRota:         req.TapaRota,
		Descripcion:      utils.SanitizeText(req.Descripcion),
	}

	if req.TecnicoID != nil {
		repair.TecnicoID = uuid.NullUUID{UUID: *req.TecnicoID, Valid: true}
	}

	if req.Cotizacion != nil {
		repair.Cotizacion = *req.Cotizacion
	}

	if repair.FechaIngreso.IsZero() {
		repair.FechaIngreso, repair.HoraIngreso = models.Stamp(s.clock())
	}

	return repair
}

func (s *repairService) CreateRepair(ctx context.Context, req *models.RepairRequest) (*models.Repair, error) {

	repair := s.repairFromRequest(req)
	if repair.Estatus == "" {
		repair.Estatus = models.RepairPendiente
	}

	if err := s.repo.CreateRepair(ctx, repair, req.FallaIDs); err != nil {
		return nil, repairError(err, "Failed to create repair")
	}

	created, err := s.repo.GetRepairByID(ctx, repair.ID)
	if err != nil {
		return nil, repairError(err, "Failed to fetch repair")
	}

	if created.TecnicoID.Valid {
		s.notifyTechnician(ctx, created.TecnicoID.UUID, created.ID)
	}

	return created, nil
}

func (s *repairService) GetRepair(ctx context.Context, id uuid.UUID) (*models.Repair, error) {

	repair, err := s.repo.GetRepairByID(ctx, id)
	if err != nil {
		return nil, repairError(err, "Failed to fetch repair")
	}

	return repair, nil
}

func (s *repairService) ListRepairs(ctx context.Context) ([]*models.Repair, error) {

	repairs, err := s.repo.ListRepairs(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch repairs").WithError(err)
	}

	return repairs, nil
}

// UpdateRepair replaces the ticket. An omitted status keeps the current one.
func (s *repairService) UpdateRepair(ctx context.Context, id uuid.UUID, req *models.RepairRequest) (*models.Repair, error) {

	existing, err := s.repo.GetRepairByID(ctx, id)
	if err != nil {
		return nil, repairError(err, "Failed to fetch repair")
	}

	repair := s.repairFromRequest(req)
	repair.ID = id

	if req.FechaIngreso.IsZero() {
		repair.FechaIngreso, repair.HoraIngreso = existing.FechaIngreso, existing.HoraIngreso
	}

	if repair.Estatus == "" {
		repair.Estatus = existing.Estatus
	}

	if err := s.repo.UpdateRepair(ctx, repair, req.FallaIDs); err != nil {
		return nil, repairError(err, "Failed to update repair")
	}

	updated, err := s.repo.GetRepairByID(ctx, id)
	if err != nil {
		return nil, repairError(err, "Failed to fetch repair")
	}

	if updated.TecnicoID.Valid && updated.TecnicoID != existing.TecnicoID {
		s.notifyTechnician(ctx, updated.TecnicoID.UUID, updated.ID)
	}

	return updated, nil
}

func (s *repairService) DeleteRepair(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteRepair(ctx, id); err != nil {
		return repairError(err, "Failed to delete repair")
	}

	return nil
}

// BulkUpdateStatus applies one status to many tickets concurrently. Each id
// gets its own outcome; a failure on one ticket does not stop the others.
func (s *repairService) BulkUpdateStatus(ctx context.Context, req *models.BulkStatusRequest) (*models.BulkStatusResult, error) {

	if !req.Estatus.IsValid() {
		return nil, appErrors.ValidationError("Invalid repair status").WithDetail(string(req.Estatus))
	}

	logger := middleware.LoggerFromContext(ctx)

	update := models.StatusUpdate{Estatus: req.Estatus}
	update.Fecha, update.Hora = models.Stamp(s.clock())
	if req.TecnicoID != nil {
		update.TecnicoID = uuid.NullUUID{UUID: *req.TecnicoID, Valid: true}
	}

	items := make([]models.BulkStatusItem, len(req.IDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkWorkers)

	for i, id := range req.IDs {
		g.Go(func() error {
			items[i].ID = id

			found, err := s.repo.UpdateStatus(gctx, id, update)
			switch {
			case err != nil:
				logger.Error("Failed to update repair status", slog.String("repairId", id.String()), slog.String("error", err.Error()))
				items[i].Outcome = models.BulkFailed
				items[i].Error = err.Error()
			case !found:
				items[i].Outcome = models.BulkNotFound
			default:
				items[i].Outcome = models.BulkUpdated
				metrics.RepairStatusUpdated(string(req.Estatus))
			}

			return nil
		})
	}

	// workers never return an error
	_ = g.Wait()

	result := &models.BulkStatusResult{Items: items}
	for _, item := range items {
		switch item.Outcome {
		case models.BulkUpdated:
			result.Updated++
			if update.TecnicoID.Valid {
				s.notifyTechnician(ctx, update.TecnicoID.UUID, item.ID)
			}
		case models.BulkNotFound:
			result.NotFound++
		default:
			result.Failed++
		}
	}

	return result, nil
}

// notifyTechnician is best-effort: the ticket is already saved.
func (s *repairService) notifyTechnician(ctx context.Context, technicianID uuid.UUID, repairID uuid.UUID) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.NotifyTechnicianAssigned(ctx, technicianID, repairID); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to notify technician",
			slog.String("repairId", repairID.String()),
			slog.String("technicianId", technicianID.String()),
			slog.String("error", err.Error()))
	}
}

func repairError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return appErrors.NotFoundError("Repair not found").WithError(err)
	case errors.Is(err, repository.ErrInvalidReference):
		return appErrors.BadRequestError("Repair references an unknown user, client, brand or fault").WithError(err)
	}
	return appErrors.DatabaseError(message).WithError(err)
}
