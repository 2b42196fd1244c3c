package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type RepairRepository interface {
	CreateRepair(ctx context.Context, repair *models.Repair, fallaIDs []uuid.UUID) error
	GetRepairByID(ctx context.Context, id uuid.UUID) (*models.Repair, error)
	ListRepairs(ctx context.Context) ([]*models.Repair, error)
	UpdateRepair(ctx context.Context, repair *models.Repair, fallaIDs []uuid.UUID) error
	DeleteRepair(ctx context.Context, id uuid.UUID) error
	// UpdateStatus reports false when no ticket has the id.
	UpdateStatus(ctx context.Context, id uuid.UUID, update models.StatusUpdate) (bool, error)
}

type repairRepository struct {
	DB *sql.DB
}

func NewRepairRepo(db *sql.DB) RepairRepository {
	return &repairRepository{DB: db}
}

func (r *repairRepository) CreateRepair(ctx context.Context, repair *models.Repair, fallaIDs []uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO repairs (recepcion_id, tecnico_id, cliente_id, marca_id, modelo, tipo_bloqueo, contrasena,
			fecha_ingreso, hora_ingreso, fecha_programada, hora_programada, fecha_diagnostico, estatus,
			cotizacion, adelanto, sim, manipulado, mojado, apagado, pantalla_rota, tapa_rota, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(dbCtx, query, repair.RecepcionID, repair.TecnicoID, repair.ClienteID, repair.MarcaID,
			repair.Modelo, repair.TipoBloqueo, repair.Contrasena, repair.FechaIngreso, repair.HoraIngreso,
			repair.FechaProgramada, repair.HoraProgramada, repair.FechaDiagnostico, repair.Estatus, repair.Cotizacion,
			repair.Adelanto, repair.Sim, repair.Manipulado, repair.Mojado, repair.Apagado, repair.PantallaRota,
			repair.TapaRota, repair.Descripcion).Scan(&repair.ID, &repair.CreatedAt, &repair.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create repair: %w", mapError(err))
		}

		return insertRepairFallas(dbCtx, tx, repair.ID, fallaIDs)
	})
}

func insertRepairFallas(ctx context.Context, tx *sql.Tx, repairID uuid.UUID, fallaIDs []uuid.UUID) error {
	for _, fallaID := range fallaIDs {
		_, err := tx.ExecContext(ctx, `INSERT INTO repair_fallas (repair_id, falla_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, repairID, fallaID)
		if err != nil {
			return fmt.Errorf("failed to attach falla %s: %w", fallaID, mapError(err))
		}
	}
	return nil
}

const repairSelect = `
	SELECT r.id, r.recepcion_id, COALESCE(ur.nombre, ''), COALESCE(ur.apellido, ''),
	       r.tecnico_id, COALESCE(ut.nombre, ''), COALESCE(ut.apellido, ''),
	       r.cliente_id, COALESCE(c.first_name || ' ' || c.last_name, ''), COALESCE(c.phone, ''),
	       r.marca_id, COALESCE(m.name, ''),
	       r.modelo, r.tipo_bloqueo, r.contrasena, r.fecha_ingreso, r.hora_ingreso, r.fecha_programada, r.hora_programada,
	       r.fecha_diagnostico, r.fecha_reparado, r.hora_reparado, r.fecha_entregado, r.hora_entregado,
	       r.estatus, r.cotizacion, r.adelanto, r.sim, r.manipulado, r.mojado, r.apagado, r.pantalla_rota, r.tapa_rota,
	       r.descripcion, r.created_at, r.updated_at
	FROM repairs r
	LEFT JOIN users ur ON r.recepcion_id = ur.id
	LEFT JOIN users ut ON r.tecnico_id = ut.id
	LEFT JOIN clients c ON r.cliente_id = c.id
	LEFT JOIN marcas m ON r.marca_id = m.id`

func scanRepair(row interface{ Scan(...any) error }) (*models.Repair, error) {
	rp := &models.Repair{}
	var tecnico models.UserRef

	err := row.Scan(&rp.ID, &rp.RecepcionID, &rp.Recepcion.Nombre, &rp.Recepcion.Apellido,
		&rp.TecnicoID, &tecnico.Nombre, &tecnico.Apellido,
		&rp.ClienteID, &rp.Cliente.Nombre, &rp.Cliente.Telefono,
		&rp.MarcaID, &rp.Marca.Name,
		&rp.Modelo, &rp.TipoBloqueo, &rp.Contrasena, &rp.FechaIngreso, &rp.HoraIngreso, &rp.FechaProgramada, &rp.HoraProgramada,
		&rp.FechaDiagnostico, &rp.FechaReparado, &rp.HoraReparado, &rp.FechaEntregado, &rp.HoraEntregado,
		&rp.Estatus, &rp.Cotizacion, &rp.Adelanto, &rp.Sim, &rp.Manipulado, &rp.Mojado, &rp.Apagado, &rp.PantallaRota, &rp.TapaRota,
		&rp.Descripcion, &rp.CreatedAt, &rp.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	rp.Recepcion.ID = rp.RecepcionID
	rp.Cliente.ID = rp.ClienteID
	rp.Marca.ID = rp.MarcaID
	rp.Fallas = []models.FallaRef{}

	if rp.TecnicoID.Valid {
		tecnico.ID = rp.TecnicoID.UUID
		rp.Tecnico = models.Some(tecnico)
	}

	return rp, nil
}

func (r *repairRepository) GetRepairByID(ctx context.Context, id uuid.UUID) (*models.Repair, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	repair, err := scanRepair(r.DB.QueryRowContext(dbCtx, repairSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, err
	}

	if err := r.attachFallas(dbCtx, []*models.Repair{repair}); err != nil {
		return nil, err
	}

	return repair, nil
}

func (r *repairRepository) ListRepairs(ctx context.Context) ([]*models.Repair, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, repairSelect+` ORDER BY r.fecha_ingreso DESC, r.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list repairs: %w", err)
	}
	defer rows.Close()

	repairs := []*models.Repair{}

	for rows.Next() {
		repair, err := scanRepair(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, repair)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachFallas(dbCtx, repairs); err != nil {
		return nil, err
	}

	return repairs, nil
}

// attachFallas populates the fault references of every ticket with one query.
func (r *repairRepository) attachFallas(ctx context.Context, repairs []*models.Repair) error {
	if len(repairs) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Repair, len(repairs))
	ids := make([]string, 0, len(repairs))

	for _, rp := range repairs {
		byID[rp.ID] = rp
		ids = append(ids, rp.ID.String())
	}

	query := `
		SELECT rf.repair_id, f.id, f.name
		FROM repair_fallas rf
		JOIN fallas f ON rf.falla_id = f.id
		WHERE rf.repair_id = ANY($1)
		ORDER BY f.name`

	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load repair fallas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var repairID uuid.UUID
		var falla models.FallaRef

		if err := rows.Scan(&repairID, &falla.ID, &falla.Name); err != nil {
			return err
		}

		if rp, ok := byID[repairID]; ok {
			rp.Fallas = append(rp.Fallas, falla)
		}
	}

	return rows.Err()
}

func (r *repairRepository) UpdateRepair(ctx context.Context, repair *models.Repair, fallaIDs []uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE repairs SET recepcion_id = $1, tecnico_id = $2, cliente_id = $3, marca_id = $4, modelo = $5,
			tipo_bloqueo = $6, contrasena = $7, fecha_ingreso = $8, hora_ingreso = $9, fecha_programada = $10,
			hora_programada = $11, fecha_diagnostico = $12, estatus = $13, cotizacion = $14, adelanto = $15,
			sim = $16, manipulado = $17, mojado = $18, apagado = $19, pantalla_rota = $20, tapa_rota = $21,
			descripcion = $22, updated_at = NOW()
		WHERE id = $23
		RETURNING created_at, updated_at`

	return withTx(dbCtx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(dbCtx, query, repair.RecepcionID, repair.TecnicoID, repair.ClienteID, repair.MarcaID,
			repair.Modelo, repair.TipoBloqueo, repair.Contrasena, repair.FechaIngreso, repair.HoraIngreso,
			repair.FechaProgramada, repair.HoraProgramada, repair.FechaDiagnostico, repair.Estatus, repair.Cotizacion,
			repair.Adelanto, repair.Sim, repair.Manipulado, repair.Mojado, repair.Apagado, repair.PantallaRota,
			repair.TapaRota, repair.Descripcion, repair.ID).Scan(&repair.CreatedAt, &repair.UpdatedAt)
		if err != nil {
			return mapError(err)
		}

		if _, err := tx.ExecContext(dbCtx, `DELETE FROM repair_fallas WHERE repair_id = $1`, repair.ID); err != nil {
			return fmt.Errorf("failed to clear repair fallas: %w", err)
		}

		return insertRepairFallas(dbCtx, tx, repair.ID, fallaIDs)
	})
}

func (r *repairRepository) DeleteRepair(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM repairs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete repair: %w", err)
	}

	return expectAffected(result)
}

func (r *repairRepository) UpdateStatus(ctx context.Context, id uuid.UUID, update models.StatusUpdate) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	args := []any{update.Estatus}
	sets := []string{"estatus = $1", "updated_at = NOW()"}

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.TecnicoID.Valid {
		set("tecnico_id", update.TecnicoID.UUID)
	}

	switch update.Estatus {
	case models.RepairCompletado:
		set("fecha_reparado", update.Fecha)
		set("hora_reparado", update.Hora)
	case models.RepairEntregado:
		set("fecha_entregado", update.Fecha)
		set("hora_entregado", update.Hora)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE repairs SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.DB.ExecContext(dbCtx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update repair status: %w", mapError(err))
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return n > 0, nil
}
