package dto

import "time"

// CreateFiscalYearRequest entrada para crear un año fiscal. El ID se deriva
// de los años calendario de las fechas ("<inicio>_<fin>").
type CreateFiscalYearRequest struct {
	StartDate string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" validate:"required"`   // YYYY-MM-DD
}

// FiscalYearResponse salida de un año fiscal.
type FiscalYearResponse struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedBy string    `json:"created_by"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FiscalYearListResponse lista de años fiscales.
type FiscalYearListResponse struct {
	Items []FiscalYearResponse `json:"items"`
}
