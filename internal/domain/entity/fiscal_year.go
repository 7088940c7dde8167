package entity

import (
	"fmt"
	"time"
)

// FiscalYear representa un periodo contable. El ID se deriva de forma
// determinista de los años calendario de inicio y fin: "<inicio>_<fin>".
// Lo crea un admin durante el setup inicial y no se muta después.
type FiscalYear struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	CreatedBy string
	Status    string // active
	CreatedAt time.Time
}

// FiscalYearID deriva el identificador a partir de los años calendario.
func FiscalYearID(startYear, endYear int) string {
	return fmt.Sprintf("%d_%d", startYear, endYear)
}
