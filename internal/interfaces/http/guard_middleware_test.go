package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/delivery-pro/internal/application/session"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	apphttp "github.com/tu-usuario/delivery-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/delivery-pro/pkg/jwt"
	"github.com/tu-usuario/delivery-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria de los puertos que consume el resolver de sesión
// ──────────────────────────────────────────────────────────────────────────────

type stubUsers struct {
	byID map[string]*entity.User
}

func (s *stubUsers) Create(_ context.Context, u *entity.User) error {
	s.byID[u.ID] = u
	return nil
}

func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, _ string) (*entity.User, error) { return nil, nil }
func (s *stubUsers) Update(_ context.Context, u *entity.User) error {
	s.byID[u.ID] = u
	return nil
}

func (s *stubUsers) UpdateFiscalYear(_ context.Context, userID, fiscalYearID string) error {
	if u, ok := s.byID[userID]; ok {
		u.CurrentFiscalYear = fiscalYearID
	}
	return nil
}

func (s *stubUsers) List(_ context.Context, _, _ string, _, _ int) ([]*entity.User, error) {
	return nil, nil
}
func (s *stubUsers) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

type stubCompanies struct {
	records []*entity.Company
}

func (s *stubCompanies) Create(_ context.Context, c *entity.Company) error {
	s.records = append(s.records, c)
	return nil
}

func (s *stubCompanies) GetByID(_ context.Context, _ string) (*entity.Company, error) {
	return nil, nil
}

func (s *stubCompanies) GetByCompanyID(_ context.Context, companyID string) (*entity.Company, error) {
	for _, c := range s.records {
		if c.CompanyID == companyID {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCompanies) GetByCompanyIDInFiscalYear(_ context.Context, fiscalYearID, companyID string) (*entity.Company, error) {
	for _, c := range s.records {
		if c.FiscalYearID == fiscalYearID && c.CompanyID == companyID {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCompanies) LastSequence(_ context.Context, _ string, _ int) (int, error) {
	return 0, nil
}

func (s *stubCompanies) List(_ context.Context, _ string, _, _ int) ([]*entity.Company, error) {
	return s.records, nil
}

func (s *stubCompanies) ExistsInFiscalYear(_ context.Context, fiscalYearID string) (bool, error) {
	for _, c := range s.records {
		if c.FiscalYearID == fiscalYearID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubCompanies) ExistsAny(_ context.Context) (bool, error) {
	return len(s.records) > 0, nil
}

func (s *stubCompanies) Update(_ context.Context, _ *entity.Company) error { return nil }
func (s *stubCompanies) Delete(_ context.Context, _ string) error          { return nil }

type stubFiscal struct {
	years []*entity.FiscalYear
}

func (s *stubFiscal) Create(_ context.Context, fy *entity.FiscalYear) error {
	s.years = append(s.years, fy)
	return nil
}

func (s *stubFiscal) GetByID(_ context.Context, id string) (*entity.FiscalYear, error) {
	for _, fy := range s.years {
		if fy.ID == id {
			return fy, nil
		}
	}
	return nil, nil
}

func (s *stubFiscal) List(_ context.Context) ([]*entity.FiscalYear, error) { return s.years, nil }
func (s *stubFiscal) ExistsAny(_ context.Context) (bool, error)            { return len(s.years) > 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireReadiness — tri-estado por principal sobre rutas reales
// ──────────────────────────────────────────────────────────────────────────────

const testOperatorID = "00000000-0000-0000-0000-000000000002"

// buildReadinessFixture levanta una app con una ruta gobernada por readiness y
// el tracker real por detrás, contra un almacén donde el admin queda listo.
func buildReadinessFixture(fiscal *stubFiscal, companies *stubCompanies) (*fiber.App, *session.Tracker) {
	users := &stubUsers{byID: map[string]*entity.User{
		testUserID: {
			ID: testUserID, Role: entity.RoleAdmin,
			CurrentFiscalYear: testFiscalYear, Status: "active",
		},
		testOperatorID: {
			ID: testOperatorID, Role: entity.RoleOperator, Status: "active",
		},
	}}
	tracker := session.NewTracker(session.NewResolver(users, companies, fiscal, logger.Nop()))

	app := fiber.New()
	app.Get("/admin-op",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireReadiness(tracker),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app, tracker
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", "", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// Sin bootstrap previo en este proceso no hay estado concluyente: la ruta
// responde 503 reintentable, no un 409 que mande al usuario a reconfigurar.
func TestRequireReadiness_SinBootstrap_Retorna503(t *testing.T) {
	app, _ := buildReadinessFixture(
		&stubFiscal{years: []*entity.FiscalYear{{ID: testFiscalYear}}},
		&stubCompanies{records: []*entity.Company{{ID: "c1", CompanyID: testCompanyID, FiscalYearID: testFiscalYear}}},
	)

	resp := doRequest(t, app, "/admin-op", adminToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RESOLVING")
}

// Bootstrap concluido sin años fiscales: el workspace no está listo y la ruta
// exige configuración inicial.
func TestRequireReadiness_SinConfiguracion_Retorna409(t *testing.T) {
	app, tracker := buildReadinessFixture(&stubFiscal{}, &stubCompanies{})

	_, err := tracker.OnPrincipalChanged(context.Background(), session.Principal{ID: testUserID})
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin-op", adminToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "CONFIG_REQUIRED")
}

// Con año fiscal y empresa el admin pasa, y el bootstrap de otro principal no
// le tumba el acceso: el estado se consulta por el principal del token.
func TestRequireReadiness_PorPrincipalDelToken(t *testing.T) {
	app, tracker := buildReadinessFixture(
		&stubFiscal{years: []*entity.FiscalYear{{ID: testFiscalYear}}},
		&stubCompanies{records: []*entity.Company{{ID: "c1", CompanyID: testCompanyID, FiscalYearID: testFiscalYear}}},
	)
	ctx := context.Background()

	_, err := tracker.OnPrincipalChanged(ctx, session.Principal{ID: testUserID})
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin-op", adminToken(t))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Un operador sin empresa asignada hace bootstrap (ReadyNo para él).
	_, err = tracker.OnPrincipalChanged(ctx, session.Principal{ID: testOperatorID})
	require.NoError(t, err)

	resp = doRequest(t, app, "/admin-op", adminToken(t))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la sesión del admin no debe degradarse por el bootstrap de otro usuario")

	// El propio operador sí queda bloqueado por configuración pendiente.
	opTok, err := pkgjwt.Generate(testJWTSecret, testOperatorID, "", "", "operator", testIssuer, testExpMin)
	require.NoError(t, err)
	resp = doRequest(t, app, "/admin-op", "Bearer "+opTok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Y su logout tampoco arrastra al admin.
	tracker.OnPrincipalAbsent(testOperatorID)
	resp2 := doRequest(t, app, "/admin-op", adminToken(t))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}
