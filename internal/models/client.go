package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	SecondName     string    `json:"secondName,omitempty"`
	LastName       string    `json:"lastName"`
	SecondLastName string    `json:"secondLastName,omitempty"`
	Phone          string    `json:"phone"`
	SecondPhone    string    `json:"secondPhone,omitempty"`
	DateInserted   time.Time `json:"dateInserted"`
}

type ClientRequest struct {
	FirstName      string `json:"firstName" validate:"required,max=100"`
	SecondName     string `json:"secondName,omitempty" validate:"max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	SecondLastName string `json:"secondLastName,omitempty" validate:"max=100"`
	Phone          string `json:"phone" validate:"required,max=30"`
	SecondPhone    string `json:"secondPhone,omitempty" validate:"max=30"`
}

type ClientSearchRequest struct {
	Term string `json:"term" validate:"required,min=1"`
}
