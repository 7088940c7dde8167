package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/delivery-pro/internal/application/dto"
	"github.com/tu-usuario/delivery-pro/internal/application/session"
	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
	"github.com/tu-usuario/delivery-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y logout.
// El login dispara el bootstrap de sesión a través del tracker para que el
// token emitido lleve el workspace ya resuelto (empresa y año fiscal post-backfill).
type AuthUseCase struct {
	users   repository.UserRepository
	tracker *session.Tracker
	jwtCfg  JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tracker *session.Tracker, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, tracker: tracker, jwtCfg: jwtCfg}
}

// Register crea un perfil con rol por defecto: hashea password con bcrypt y
// persiste. Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.users.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleDefault,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, resuelve el workspace vía bootstrap, genera
// el JWT con los claims resueltos y calcula el destino de ruta desde /login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	ws, err := uc.tracker.OnPrincipalChanged(ctx, session.Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, ws.CompanyID, ws.FiscalYear, ws.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:       token,
		User:        *ToUserResponse(user),
		Workspace:   ToWorkspaceResponse(ws, uc.tracker.CurrentFor(user.ID)),
		Destination: session.Destination(true, ws.Role, ws.Ready(), session.PathLogin),
	}, nil
}

// Logout limpia el estado de sesión resuelto del principal en un solo paso.
func (uc *AuthUseCase) Logout(userID string) {
	uc.tracker.OnPrincipalAbsent(userID)
}

// ToUserResponse convierte la entidad a DTO de salida.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role,
		CompanyID:         u.CompanyID,
		CurrentFiscalYear: u.CurrentFiscalYear,
		Status:            u.Status,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// ToWorkspaceResponse convierte el workspace resuelto a DTO de salida.
func ToWorkspaceResponse(ws session.Workspace, snap session.Snapshot) dto.WorkspaceResponse {
	out := dto.WorkspaceResponse{
		Role:       ws.Role,
		CompanyID:  ws.CompanyID,
		FiscalYear: ws.FiscalYear,
		Ready:      ws.Ready(),
		ReadyState: snap.ReadyState().String(),
	}
	if ws.Company != nil {
		out.Company = &dto.CompanyResponse{
			ID:           ws.Company.ID,
			FiscalYearID: ws.Company.FiscalYearID,
			CompanyID:    ws.Company.CompanyID,
			Name:         ws.Company.Name,
			OwnerID:      ws.Company.OwnerID,
			Address:      ws.Company.Address,
			Phone:        ws.Company.Phone,
			Email:        ws.Company.Email,
			BankAccounts: ws.Company.BankAccounts,
			Status:       ws.Company.Status,
			CreatedAt:    ws.Company.CreatedAt,
			UpdatedAt:    ws.Company.UpdatedAt,
		}
	}
	return out
}
