package records_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/crm-core-api/internal/domain/entity"
	"github.com/jhoicas/crm-core-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia, para probar los casos de
// uso sin PostgreSQL. Mismos contratos que los repos reales: GetByID devuelve
// nil sin error si no existe, GetByNameKey devuelve la coincidencia más
// antigua por CreatedAt.
// ──────────────────────────────────────────────────────────────────────────────

const testOrgID = "00000000-0000-0000-0000-0000000000aa"

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) Insert(a *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(orgID, id string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok || a.OrgID != orgID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetByNameKey(orgID, nameKey string) (*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matches []*entity.Account
	for _, a := range r.accounts {
		if a.OrgID == orgID && a.NameKey == nameKey {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.Before(matches[j].CreatedAt) })
	cp := *matches[0]
	return &cp, nil
}

func (r *fakeAccountRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Account
	for _, a := range r.accounts {
		if a.OrgID == orgID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(a *entity.Account) error {
	return r.Insert(a)
}

func (r *fakeAccountRepo) Upsert(a *entity.Account) error {
	return r.Insert(a)
}

func (r *fakeAccountRepo) Delete(orgID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[id]; ok && a.OrgID == orgID {
		delete(r.accounts, id)
	}
	return nil
}

func (r *fakeAccountRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts map[string]*entity.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*entity.Contact)}
}

func (r *fakeContactRepo) Insert(c *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *fakeContactRepo) GetByID(orgID, id string) (*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok || c.OrgID != orgID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContactRepo) ListByAccount(orgID, accountID string) ([]*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Contact
	for _, c := range r.contacts {
		if c.OrgID == orgID && c.AccountID == accountID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeContactRepo) UpsertMany(contacts []*entity.Contact) error {
	for _, c := range contacts {
		if err := r.Insert(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeContactRepo) Delete(orgID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.contacts[id]; ok && c.OrgID == orgID {
		delete(r.contacts, id)
	}
	return nil
}

type fakeOpportunityRepo struct {
	mu   sync.Mutex
	opps map[string]*entity.Opportunity
}

func newFakeOpportunityRepo() *fakeOpportunityRepo {
	return &fakeOpportunityRepo{opps: make(map[string]*entity.Opportunity)}
}

func (r *fakeOpportunityRepo) Insert(o *entity.Opportunity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.opps[o.ID] = &cp
	return nil
}

func (r *fakeOpportunityRepo) GetByID(orgID, id string) (*entity.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.opps[id]
	if !ok || o.OrgID != orgID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOpportunityRepo) ListByAccount(orgID, accountID string) ([]*entity.Opportunity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Opportunity
	for _, o := range r.opps {
		if o.OrgID == orgID && o.AccountID == accountID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOpportunityRepo) UpsertMany(opps []*entity.Opportunity) error {
	for _, o := range opps {
		if err := r.Insert(o); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeOpportunityRepo) Delete(orgID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.opps[id]; ok && o.OrgID == orgID {
		delete(r.opps, id)
	}
	return nil
}

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads map[string]*entity.Lead
	// historial de inserts (en orden), para verificar que el ciclo
	// create→delete realmente insertó antes de borrar
	inserted []*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (r *fakeLeadRepo) Insert(l *entity.Lead) error {
	return r.InsertMany([]*entity.Lead{l})
}

func (r *fakeLeadRepo) InsertMany(leads []*entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range leads {
		cp := *l
		r.leads[l.ID] = &cp
		r.inserted = append(r.inserted, &cp)
	}
	return nil
}

func (r *fakeLeadRepo) GetByID(orgID, id string) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok || l.OrgID != orgID {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.OrgID == orgID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeLeadRepo) DeleteMany(orgID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if l, ok := r.leads[id]; ok && l.OrgID == orgID {
			delete(r.leads, id)
		}
	}
	return nil
}

func (r *fakeLeadRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.leads)
}

type fakeCaseRepo struct {
	mu       sync.Mutex
	cases    map[string]*entity.Case
	inserted []*entity.Case
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: make(map[string]*entity.Case)}
}

func (r *fakeCaseRepo) InsertMany(cases []*entity.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cases {
		cp := *c
		r.cases[c.ID] = &cp
		r.inserted = append(r.inserted, &cp)
	}
	return nil
}

func (r *fakeCaseRepo) ListByAccount(orgID, accountID string) ([]*entity.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Case
	for _, c := range r.cases {
		if c.OrgID == orgID && c.AccountID == accountID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCaseRepo) DeleteMany(orgID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if c, ok := r.cases[id]; ok && c.OrgID == orgID {
			delete(r.cases, id)
		}
	}
	return nil
}

func (r *fakeCaseRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cases)
}

// fakeTxRunner entrega los fakes al callback sin transacción real: suficiente
// para verificar la semántica de los casos de uso.
type fakeTxRunner struct {
	accounts *fakeAccountRepo
	contacts *fakeContactRepo
	opps     *fakeOpportunityRepo
	leads    *fakeLeadRepo
	cases    *fakeCaseRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		accounts: newFakeAccountRepo(),
		contacts: newFakeContactRepo(),
		opps:     newFakeOpportunityRepo(),
		leads:    newFakeLeadRepo(),
		cases:    newFakeCaseRepo(),
	}
}

func (t *fakeTxRunner) RunRecords(_ context.Context, fn func(
	repository.AccountRepository,
	repository.ContactRepository,
	repository.OpportunityRepository,
) error) error {
	return fn(t.accounts, t.contacts, t.opps)
}

func (t *fakeTxRunner) RunRoundTrip(_ context.Context, fn func(
	repository.LeadRepository,
	repository.CaseRepository,
) error) error {
	return fn(t.leads, t.cases)
}
