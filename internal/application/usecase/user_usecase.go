package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/delivery-pro/internal/application/auth"
	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// ProvisioningTxRunner ejecuta el alta/baja de usuario y su membresía dentro
// de una transacción: el perfil y el registro por rol son dos representaciones
// de la misma asignación y nunca deben divergir.
type ProvisioningTxRunner interface {
	RunProvisioning(ctx context.Context, fn func(
		users repository.UserRepository,
		memberships repository.MembershipRepository,
	) error) error
}

// UserUseCase aprovisionamiento de usuarios por un admin: crea el perfil y el
// registro de membresía del rol como escritura transaccional única.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	tx        ProvisioningTxRunner
}

// NewUserUseCase construye el caso de uso con sus puertos.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository, tx ProvisioningTxRunner) *UserUseCase {
	return &UserUseCase{users: users, companies: companies, tx: tx}
}

// Provision crea un usuario con rol asignado. Para roles de workspace
// (operator/driver/customer/supplier) exige empresa y año fiscal, valida que
// la empresa exista (alcance del año primero, plano como fallback) y escribe
// perfil + membresía en una sola transacción.
func (uc *UserUseCase) Provision(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, _ := uc.users.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	isWorkspace := entity.IsWorkspaceRole(in.Role)
	if isWorkspace {
		if in.CompanyID == "" || in.FiscalYearID == "" {
			return nil, domain.ErrInvalidInput
		}
		company, err := uc.companies.GetByCompanyIDInFiscalYear(ctx, in.FiscalYearID, in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			company, err = uc.companies.GetByCompanyID(ctx, in.CompanyID)
			if err != nil {
				return nil, err
			}
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:                uuid.New().String(),
		Email:             in.Email,
		PasswordHash:      string(hash),
		Name:              in.Name,
		Role:              in.Role,
		CompanyID:         in.CompanyID,
		CurrentFiscalYear: in.FiscalYearID,
		Status:            "active",
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if !isWorkspace {
		// admin no lleva membresía: alta directa del perfil.
		if err := uc.users.Create(ctx, user); err != nil {
			return nil, err
		}
		return auth.ToUserResponse(user), nil
	}

	membership := &entity.Membership{
		UserID:        user.ID,
		FiscalYearID:  in.FiscalYearID,
		Role:          in.Role,
		CompanyID:     in.CompanyID,
		VehicleType:   in.VehicleType,
		VehiclePlate:  in.VehiclePlate,
		LicenseNumber: in.LicenseNumber,
		Address:       in.Address,
		City:          in.City,
		ContactName:   in.ContactName,
		ContactPhone:  in.ContactPhone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.RunProvisioning(ctx, func(users repository.UserRepository, memberships repository.MembershipRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return memberships.Create(ctx, membership)
	})
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios filtrando por rol y/o año fiscal.
func (uc *UserUseCase) List(ctx context.Context, role, fiscalYearID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.users.List(ctx, role, fiscalYearID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el perfil y sus membresías en una sola transacción.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunProvisioning(ctx, func(users repository.UserRepository, memberships repository.MembershipRepository) error {
		if err := memberships.DeleteByUser(ctx, id); err != nil {
			return err
		}
		return users.Delete(ctx, id)
	})
}
