package entity

import "time"

// Customer cliente del PDV/CRM.
// ID es secuencial y legible (C-1001, C-1002, ...); UUID es la clave estable usada en updates y ventas.
type Customer struct {
	ID        string    `json:"id"`
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	Doc       string    `json:"doc"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}
