package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/tu-usuario/delivery-pro/internal/domain"
	"github.com/tu-usuario/delivery-pro/internal/domain/entity"
	"github.com/tu-usuario/delivery-pro/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia para los tests del paquete.

type memUsers struct {
	byID map[string]*entity.User
}

func newMemUsers() *memUsers { return &memUsers{byID: make(map[string]*entity.User)} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	for _, e := range m.byID {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) UpdateFiscalYear(_ context.Context, userID, fiscalYearID string) error {
	if u, ok := m.byID[userID]; ok {
		u.CurrentFiscalYear = fiscalYearID
	}
	return nil
}

func (m *memUsers) List(_ context.Context, role, fiscalYearID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.byID {
		if (role == "" || u.Role == role) && (fiscalYearID == "" || u.CurrentFiscalYear == fiscalYearID) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memCompanies struct {
	records []*entity.Company
}

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	m.records = append(m.records, &cp)
	return nil
}

func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range m.records {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) GetByCompanyID(_ context.Context, companyID string) (*entity.Company, error) {
	for _, c := range m.records {
		if c.CompanyID == companyID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) GetByCompanyIDInFiscalYear(_ context.Context, fiscalYearID, companyID string) (*entity.Company, error) {
	for _, c := range m.records {
		if c.FiscalYearID == fiscalYearID && c.CompanyID == companyID {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanies) LastSequence(_ context.Context, fiscalYearID string, _ int) (int, error) {
	max := 0
	for _, c := range m.records {
		if c.FiscalYearID == fiscalYearID {
			if n := entity.CompanySequence(c.CompanyID); n > max {
				max = n
			}
		}
	}
	return max, nil
}

func (m *memCompanies) List(_ context.Context, fiscalYearID string, _, _ int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.records {
		if fiscalYearID == "" || c.FiscalYearID == fiscalYearID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCompanies) ExistsInFiscalYear(_ context.Context, fiscalYearID string) (bool, error) {
	for _, c := range m.records {
		if c.FiscalYearID == fiscalYearID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCompanies) ExistsAny(_ context.Context) (bool, error) { return len(m.records) > 0, nil }

func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	for i, e := range m.records {
		if e.ID == c.ID {
			cp := *c
			m.records[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memCompanies) Delete(_ context.Context, id string) error {
	for i, e := range m.records {
		if e.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type memFiscal struct {
	years []*entity.FiscalYear
}

func (m *memFiscal) Create(_ context.Context, fy *entity.FiscalYear) error {
	for _, e := range m.years {
		if e.ID == fy.ID {
			return domain.ErrDuplicate
		}
	}
	cp := *fy
	m.years = append(m.years, &cp)
	return nil
}

func (m *memFiscal) GetByID(_ context.Context, id string) (*entity.FiscalYear, error) {
	for _, fy := range m.years {
		if fy.ID == id {
			return fy, nil
		}
	}
	return nil, nil
}

func (m *memFiscal) List(_ context.Context) ([]*entity.FiscalYear, error) { return m.years, nil }
func (m *memFiscal) ExistsAny(_ context.Context) (bool, error)            { return len(m.years) > 0, nil }

type memMemberships struct {
	records []*entity.Membership
	failNext bool // simula fallo en el Create dentro de la transacción
}

func (m *memMemberships) Create(_ context.Context, mb *entity.Membership) error {
	if m.failNext {
		return errors.New("escritura de membresía rechazada")
	}
	cp := *mb
	m.records = append(m.records, &cp)
	return nil
}

func (m *memMemberships) Get(_ context.Context, fiscalYearID, role, userID string) (*entity.Membership, error) {
	for _, mb := range m.records {
		if mb.FiscalYearID == fiscalYearID && mb.Role == role && mb.UserID == userID {
			return mb, nil
		}
	}
	return nil, nil
}

func (m *memMemberships) ListByRole(_ context.Context, fiscalYearID, role string, _, _ int) ([]*entity.Membership, error) {
	var out []*entity.Membership
	for _, mb := range m.records {
		if mb.FiscalYearID == fiscalYearID && mb.Role == role {
			out = append(out, mb)
		}
	}
	return out, nil
}

func (m *memMemberships) DeleteByUser(_ context.Context, userID string) error {
	kept := m.records[:0]
	for _, mb := range m.records {
		if mb.UserID != userID {
			kept = append(kept, mb)
		}
	}
	m.records = kept
	return nil
}

// memTx simula la transacción: si el callback falla, revierte los perfiles
// creados durante su ejecución (all-or-nothing).
type memTx struct {
	users       *memUsers
	memberships *memMemberships
}

func (t *memTx) RunProvisioning(ctx context.Context, fn func(
	users repository.UserRepository,
	memberships repository.MembershipRepository,
) error) error {
	beforeUsers := make(map[string]*entity.User, len(t.users.byID))
	for k, v := range t.users.byID {
		cp := *v
		beforeUsers[k] = &cp
	}
	beforeMemberships := append([]*entity.Membership(nil), t.memberships.records...)

	if err := fn(t.users, t.memberships); err != nil {
		t.users.byID = beforeUsers
		t.memberships.records = beforeMemberships
		return err
	}
	return nil
}

type memProducts struct {
	byID map[string]*entity.Product
}

func newMemProducts() *memProducts { return &memProducts{byID: make(map[string]*entity.Product)} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.byID {
		if companyID == "" || p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memOrders struct {
	byID map[string]*entity.Order
}

func newMemOrders() *memOrders { return &memOrders{byID: make(map[string]*entity.Order)} }

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) List(_ context.Context, f repository.OrderFilter, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.byID {
		if f.CompanyID != "" && o.CompanyID != f.CompanyID {
			continue
		}
		if f.FiscalYearID != "" && o.FiscalYearID != f.FiscalYearID {
			continue
		}
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.DriverID != "" && o.DriverID != f.DriverID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) Update(_ context.Context, o *entity.Order) error {
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *memOrders) LastSequence(_ context.Context, fiscalYearID string, _ int) (int, error) {
	max := 0
	for _, o := range m.byID {
		if o.FiscalYearID != fiscalYearID {
			continue
		}
		parts := strings.Split(o.OrderNumber, "-")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil && n > max {
				max = n
			}
		}
	}
	return max, nil
}
