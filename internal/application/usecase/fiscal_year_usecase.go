package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// FiscalYearUseCase casos de uso de años fiscales (setup de admin).
type FiscalYearUseCase struct {
	repo repository.FiscalYearRepository
}

// NewFiscalYearUseCase construye el caso de uso con el puerto de persistencia.
func NewFiscalYearUseCase(repo repository.FiscalYearRepository) *FiscalYearUseCase {
	return &FiscalYearUseCase{repo: repo}
}

// Create crea un año fiscal. El ID se deriva de los años calendario de las
// fechas; devuelve domain.ErrDuplicate si ya existe y domain.ErrInvalidInput
// si las fechas no parsean o el fin es anterior al inicio.
func (uc *FiscalYearUseCase) Create(ctx context.Context, createdBy string, in dto.CreateFiscalYearRequest) (*dto.FiscalYearResponse, error) {
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	id := entity.FiscalYearID(start.Year(), end.Year())
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	fy := &entity.FiscalYear{
		ID:        id,
		StartDate: start,
		EndDate:   end,
		CreatedBy: createdBy,
		Status:    "active",
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, fy); err != nil {
		return nil, err
	}
	return toFiscalYearResponse(fy), nil
}

// List devuelve todos los años fiscales.
func (uc *FiscalYearUseCase) List(ctx context.Context) (*dto.FiscalYearListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FiscalYearResponse, 0, len(list))
	for _, fy := range list {
		items = append(items, *toFiscalYearResponse(fy))
	}
	return &dto.FiscalYearListResponse{Items: items}, nil
}

func toFiscalYearResponse(fy *entity.FiscalYear) *dto.FiscalYearResponse {
	if fy == nil {
		return nil
	}
	return &dto.FiscalYearResponse{
		ID:        fy.ID,
		StartDate: fy.StartDate,
		EndDate:   fy.EndDate,
		CreatedBy: fy.CreatedBy,
		Status:    fy.Status,
		CreatedAt: fy.CreatedAt,
	}
}
