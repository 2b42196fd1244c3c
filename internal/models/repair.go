package models

import (
	"time"

	"github.com/google/uuid"
)

type RepairStatus string

const (
	RepairPendiente     RepairStatus = "PENDIENTE"
	RepairCompletado    RepairStatus = "COMPLETADO"
	RepairCancelado     RepairStatus = "CANCELADO"
	RepairGarantia      RepairStatus = "GARANTIA"
	RepairSinReparacion RepairStatus = "SIN REPARACION"
	RepairEntregado     RepairStatus = "ENTREGADO"
)

var RepairStatuses = []RepairStatus{
	RepairPendiente, RepairCompletado, RepairCancelado,
	RepairGarantia, RepairSinReparacion, RepairEntregado,
}

func (s RepairStatus) IsValid() bool {
	for _, known := range RepairStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type LockType string

const (
	LockNone    LockType = "ninguno"
	LockPin     LockType = "pin"
	LockPattern LockType = "patron"
	LockText    LockType = "contrasena"
)

type MarcaRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"marca"`
}

type ClientRef struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Telefono string    `json:"phone"`
}

type FallaRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"falla"`
}

// Repair is a Reparacion ticket with its references populated.
type Repair struct {
	ID               uuid.UUID         `json:"id"`
	RecepcionID      uuid.UUID         `json:"-"`
	TecnicoID        uuid.NullUUID     `json:"-"`
	ClienteID        uuid.UUID         `json:"-"`
	MarcaID          uuid.UUID         `json:"-"`
	Recepcion        UserRef           `json:"recepcion"`
	Tecnico          Optional[UserRef] `json:"tecnico"`
	Cliente          ClientRef         `json:"cliente"`
	Marca            MarcaRef          `json:"marca"`
	Fallas           []FallaRef        `json:"fallas"`
	Modelo           string            `json:"modelo"`
	TipoBloqueo      LockType          `json:"tipoBloqueo"`
	Contrasena       string            `json:"contrasena,omitempty"`
	FechaIngreso     Date              `json:"fechaIngreso"`
	HoraIngreso      string            `json:"horaIngreso"`
	FechaProgramada  Date              `json:"fechaProgramada"`
	HoraProgramada   string            `json:"horaProgramada,omitempty"`
	FechaDiagnostico Date              `json:"fechaDiagnostico"`
	FechaReparado    Date              `json:"fechaReparado"`
	HoraReparado     string            `json:"horaReparado,omitempty"`
	FechaEntregado   Date              `json:"fechaEntregado"`
	HoraEntregado    string            `json:"horaEntregado,omitempty"`
	Estatus          RepairStatus      `json:"estatus"`
	Cotizacion       float64           `json:"cotizacion"`
	Adelanto         float64           `json:"adelanto"`
	Sim              bool              `json:"sim"`
	Manipulado       bool              `json:"manipulado"`
	Mojado           bool              `json:"mojado"`
	Apagado          bool              `json:"apagado"`
	PantallaRota     bool              `json:"pantallaRota"`
	TapaRota         bool              `json:"tapaRota"`
	Descripcion      string            `json:"descripcion,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// RepairRequest is used for both creating and replacing a ticket.
type RepairRequest struct {
	RecepcionID      uuid.UUID    `json:"recepcion" validate:"required"`
	TecnicoID        *uuid.UUID   `json:"tecnico,omitempty"`
	ClienteID        uuid.UUID    `json:"cliente" validate:"required"`
	MarcaID          uuid.UUID    `json:"marca" validate:"required"`
	FallaIDs         []uuid.UUID  `json:"fallas,omitempty" validate:"omitempty,dive,required"`
	Modelo           string       `json:"modelo" validate:"required,max=100"`
	TipoBloqueo      LockType     `json:"tipoBloqueo" validate:"required,oneof=ninguno pin patron contrasena"`
	Contrasena       string       `json:"contrasena,omitempty" validate:"max=100"`
	FechaIngreso     Date         `json:"fechaIngreso"`
	HoraIngreso      string       `json:"horaIngreso,omitempty"`
	FechaProgramada  Date         `json:"fechaProgramada"`
	HoraProgramada   string       `json:"horaProgramada,omitempty"`
	FechaDiagnostico Date         `json:"fechaDiagnostico"`
	Estatus          RepairStatus `json:"estatus" validate:"omitempty,repair_status"`
	Cotizacion       *float64     `json:"cotizacion" validate:"required,gte=0"`
	Adelanto         float64      `json:"adelanto" validate:"gte=0"`
	Sim              bool         `json:"sim"`
	Manipulado       bool         `json:"manipulado"`
	Mojado           bool         `json:"mojado"`
	Apagado          bool         `json:"apagado"`
	PantallaRota     bool         `json:"pantallaRota"`
	TapaRota         bool         `json:"tapaRota"`
	Descripcion      string       `json:"descripcion,omitempty" validate:"max=2000"`
}

type BulkStatusRequest struct {
	IDs       []uuid.UUID  `json:"ids" validate:"required,min=1,dive,required"`
	Estatus   RepairStatus `json:"estatus" validate:"required,repair_status"`
	TecnicoID *uuid.UUID   `json:"tecnico,omitempty"`
}

// StatusUpdate is the write applied to one ticket by a bulk status change.
// Fecha and Hora go to the lifecycle columns that match Estatus, if any.
type StatusUpdate struct {
	Estatus   RepairStatus
	TecnicoID uuid.NullUUID
	Fecha     Date
	Hora      string
}

type BulkOutcome string

const (
	BulkUpdated  BulkOutcome = "updated"
	BulkNotFound BulkOutcome = "not_found"
	BulkFailed   BulkOutcome = "error"
)

type BulkStatusItem struct {
	ID      uuid.UUID   `json:"id"`
	Outcome BulkOutcome `json:"outcome"`
	Error   string      `json:"error,omitempty"`
}

type BulkStatusResult struct {
	Updated  int              `json:"updated"`
	NotFound int              `json:"notFound"`
	Failed   int              `json:"failed"`
	Items    []BulkStatusItem `json:"items"`
}
