package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/dealtrack-api/internal/domain"
	"github.com/jhoicas/dealtrack-api/internal/domain/entity"
	"github.com/jhoicas/dealtrack-api/internal/domain/repository"
)

// memStore persistencia en memoria para los tests de use case. Implementa
// los mismos contratos que los repositorios de postgres: GetByID devuelve
// nil, nil si no existe, Update/Delete devuelven domain.ErrNotFound, y las
// operaciones por lote con lista vacía no hacen nada.
type memStore struct {
	nextID   int64
	orgs     map[int64]*entity.Organization
	accounts map[int64]*entity.Account
	deals    map[int64]*entity.Deal
	state    map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		orgs:     map[int64]*entity.Organization{},
		accounts: map[int64]*entity.Account{},
		deals:    map[int64]*entity.Deal{},
		state:    map[string]string{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

type memOrgs struct{ s *memStore }

func (r memOrgs) Create(_ context.Context, org *entity.Organization) error {
	org.ID = r.s.id()
	org.CreatedAt = time.Now()
	org.UpdatedAt = org.CreatedAt
	cp := *org
	r.s.orgs[org.ID] = &cp
	return nil
}

func (r memOrgs) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	org, ok := r.s.orgs[id]
	if !ok {
		return nil, nil
	}
	cp := *org
	return &cp, nil
}

func (r memOrgs) List(_ context.Context) ([]*entity.Organization, error) {
	out := make([]*entity.Organization, 0, len(r.s.orgs))
	for _, org := range r.s.orgs {
		cp := *org
		out = append(out, &cp)
	}
	return out, nil
}

func (r memOrgs) Update(_ context.Context, org *entity.Organization) error {
	if _, ok := r.s.orgs[org.ID]; !ok {
		return domain.ErrNotFound
	}
	org.UpdatedAt = time.Now()
	cp := *org
	r.s.orgs[org.ID] = &cp
	return nil
}

func (r memOrgs) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.orgs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orgs, id)
	return nil
}

type memAccounts struct{ s *memStore }

func (r memAccounts) Create(_ context.Context, account *entity.Account) error {
	account.ID = r.s.id()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	cp := *account
	r.s.accounts[account.ID] = &cp
	return nil
}

func (r memAccounts) GetByID(_ context.Context, id int64) (*entity.Account, error) {
	account, ok := r.s.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (r memAccounts) List(_ context.Context) ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.s.accounts))
	for _, a := range r.s.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r memAccounts) ListByOrganization(_ context.Context, organizationID int64) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.s.accounts {
		if a.OrganizationID == organizationID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memAccounts) Update(_ context.Context, account *entity.Account) error {
	if _, ok := r.s.accounts[account.ID]; !ok {
		return domain.ErrNotFound
	}
	account.UpdatedAt = time.Now()
	cp := *account
	r.s.accounts[account.ID] = &cp
	return nil
}

func (r memAccounts) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.accounts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.accounts, id)
	return nil
}

func (r memAccounts) DeleteByOrganization(_ context.Context, organizationID int64) (int64, error) {
	var n int64
	for id, a := range r.s.accounts {
		if a.OrganizationID == organizationID {
			delete(r.s.accounts, id)
			n++
		}
	}
	return n, nil
}

type memDeals struct{ s *memStore }

func (r memDeals) Create(_ context.Context, deal *entity.Deal) error {
	deal.ID = r.s.id()
	deal.CreatedAt = time.Now()
	deal.UpdatedAt = deal.CreatedAt
	cp := *deal
	r.s.deals[deal.ID] = &cp
	return nil
}

func (r memDeals) GetByID(_ context.Context, id int64) (*entity.Deal, error) {
	deal, ok := r.s.deals[id]
	if !ok {
		return nil, nil
	}
	cp := *deal
	return &cp, nil
}

func (r memDeals) List(_ context.Context) ([]*entity.Deal, error) {
	out := make([]*entity.Deal, 0, len(r.s.deals))
	for _, d := range r.s.deals {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r memDeals) ListByAccountIDs(_ context.Context, accountIDs []int64) ([]*entity.Deal, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	member := make(map[int64]bool, len(accountIDs))
	for _, id := range accountIDs {
		member[id] = true
	}
	var out []*entity.Deal
	for _, d := range r.s.deals {
		if member[d.AccountID] {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memDeals) Update(_ context.Context, deal *entity.Deal) error {
	if _, ok := r.s.deals[deal.ID]; !ok {
		return domain.ErrNotFound
	}
	deal.UpdatedAt = time.Now()
	cp := *deal
	r.s.deals[deal.ID] = &cp
	return nil
}

func (r memDeals) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.deals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.deals, id)
	return nil
}

func (r memDeals) DeleteByAccountIDs(_ context.Context, accountIDs []int64) (int64, error) {
	if len(accountIDs) == 0 {
		return 0, nil
	}
	member := make(map[int64]bool, len(accountIDs))
	for _, id := range accountIDs {
		member[id] = true
	}
	var n int64
	for id, d := range r.s.deals {
		if member[d.AccountID] {
			delete(r.s.deals, id)
			n++
		}
	}
	return n, nil
}

type memState struct{ s *memStore }

func (r memState) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := r.s.state[key]
	return v, ok, nil
}

func (r memState) Set(_ context.Context, key, value string) error {
	r.s.state[key] = value
	return nil
}

func (r memState) Delete(_ context.Context, key string) error {
	delete(r.s.state, key)
	return nil
}

// memTx ejecuta el callback directamente sobre los repositorios en memoria.
type memTx struct{ s *memStore }

func (t memTx) Run(_ context.Context, fn func(
	orgs repository.OrganizationRepository,
	accounts repository.AccountRepository,
	deals repository.DealRepository,
) error) error {
	return fn(memOrgs{t.s}, memAccounts{t.s}, memDeals{t.s})
}
