package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Department string

const (
	DepartmentAdmin     Department = "admin"
	DepartmentTecnico   Department = "tecnico"
	DepartmentRecepcion Department = "recepcion"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"user"`
	Password     string     `json:"-"`
	Department   Department `json:"department"`
	Nombre       string     `json:"nombre"`
	Apellido     string     `json:"apellido"`
	Email        string     `json:"email"`
	FechaIngreso Date       `json:"fecha_ingreso"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserRef is the subset of a user shown when another record references it.
type UserRef struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Apellido string    `json:"apellido"`
}

type RegisterRequest struct {
	Username     string     `json:"user" validate:"required,min=3,max=50"`
	Password     string     `json:"password" validate:"required,min=6"`
	Department   Department `json:"department" validate:"required,oneof=admin tecnico recepcion"`
	Nombre       string     `json:"nombre" validate:"required"`
	Apellido     string     `json:"apellido" validate:"required"`
	Email        string     `json:"email" validate:"required,email"`
	FechaIngreso Date       `json:"fecha_ingreso"`
}

type LoginRequest struct {
	Username string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token      string     `json:"token"`
	ExpiresIn  int        `json:"expires_in"`
	UserID     uuid.UUID  `json:"userId"`
	Department Department `json:"department"`
	Nombre     string     `json:"nombre"`
	Apellido   string     `json:"apellido"`
	Email      string     `json:"email"`
}

// JWT claims structure
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
