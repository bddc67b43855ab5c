package stock_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"
	"github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore guarda todo el estado; los repos fake leen y escriben sobre él SIN
// bloquear. fakeTxRunner serializa cada transacción con el mutex del store y
// simula el rollback restaurando un snapshot cuando fn devuelve error, que es
// exactamente el contrato que los casos de uso esperan de Postgres.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	meds     map[string]*entity.Medication
	usages   []*entity.UsageHistoryRecord
	logs     []*entity.StockLogEntry
	notifs   []*entity.AdminNotification
	restocks map[string]*entity.RestockRequest
}

func newMemStore() *memStore {
	return &memStore{
		meds:     make(map[string]*entity.Medication),
		restocks: make(map[string]*entity.RestockRequest),
	}
}

type storeSnapshot struct {
	meds     map[string]*entity.Medication
	usages   []*entity.UsageHistoryRecord
	logs     []*entity.StockLogEntry
	notifs   []*entity.AdminNotification
	restocks map[string]*entity.RestockRequest
}

func (s *memStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		meds:     make(map[string]*entity.Medication, len(s.meds)),
		restocks: make(map[string]*entity.RestockRequest, len(s.restocks)),
	}
	for id, m := range s.meds {
		c := *m
		snap.meds[id] = &c
	}
	for id, r := range s.restocks {
		c := *r
		snap.restocks[id] = &c
	}
	snap.usages = append(snap.usages, s.usages...)
	snap.logs = append(snap.logs, s.logs...)
	snap.notifs = append(snap.notifs, s.notifs...)
	return snap
}

func (s *memStore) restore(snap storeSnapshot) {
	s.meds = snap.meds
	s.usages = snap.usages
	s.logs = snap.logs
	s.notifs = snap.notifs
	s.restocks = snap.restocks
}

// addMedication agrega un medicamento directo al store (setup de tests).
func (s *memStore) addMedication(m *entity.Medication) {
	c := *m
	s.meds[m.ID] = &c
}

// ── MedicationRepository ──────────────────────────────────────────────────────

type medRepoFake struct{ s *memStore }

func (r *medRepoFake) Create(m *entity.Medication) error {
	for _, existing := range r.s.meds {
		if existing.Name == m.Name {
			return domain.ErrDuplicate
		}
	}
	c := *m
	r.s.meds[m.ID] = &c
	return nil
}

func (r *medRepoFake) GetByID(id string) (*entity.Medication, error) {
	m, ok := r.s.meds[id]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

func (r *medRepoFake) GetForUpdate(id string) (*entity.Medication, error) {
	return r.GetByID(id)
}

func (r *medRepoFake) Update(m *entity.Medication) error {
	if _, ok := r.s.meds[m.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *m
	r.s.meds[m.ID] = &c
	return nil
}

func (r *medRepoFake) UpdateStock(id string, newStock int64) error {
	m, ok := r.s.meds[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Stock = newStock
	m.UpdatedAt = time.Now()
	return nil
}

func (r *medRepoFake) List(limit, offset int) ([]*entity.Medication, error) {
	all := r.sorted(func(m *entity.Medication) bool { return true })
	return paginate(all, limit, offset), nil
}

func (r *medRepoFake) ListByCategoryPattern(pattern string) ([]*entity.Medication, error) {
	p := strings.ToLower(pattern)
	return r.sorted(func(m *entity.Medication) bool {
		return strings.Contains(strings.ToLower(m.Category), p)
	}), nil
}

func (r *medRepoFake) ListControlled() ([]*entity.Medication, error) {
	return r.sorted(func(m *entity.Medication) bool { return m.Controlled }), nil
}

func (r *medRepoFake) ListBelowMinimum() ([]*entity.Medication, error) {
	out := r.sorted(func(m *entity.Medication) bool { return m.Stock <= m.MinStock })
	sort.Slice(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out, nil
}

func (r *medRepoFake) sorted(keep func(*entity.Medication) bool) []*entity.Medication {
	var out []*entity.Medication
	for _, m := range r.s.meds {
		if keep(m) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ── UsageHistoryRepository ────────────────────────────────────────────────────

type usageRepoFake struct{ s *memStore }

func (r *usageRepoFake) Create(record *entity.UsageHistoryRecord) error {
	c := *record
	r.s.usages = append(r.s.usages, &c)
	return nil
}

func (r *usageRepoFake) ListByMedication(medicationID string, limit, offset int) ([]*entity.UsageHistoryRecord, error) {
	var out []*entity.UsageHistoryRecord
	for _, u := range r.s.usages {
		if u.MedicationID == medicationID {
			out = append(out, u)
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *usageRepoFake) ListByPatient(patientID string, limit, offset int) ([]*entity.UsageHistoryRecord, error) {
	var out []*entity.UsageHistoryRecord
	for _, u := range r.s.usages {
		if u.PatientID != nil && *u.PatientID == patientID {
			out = append(out, u)
		}
	}
	return paginate(out, limit, offset), nil
}

// ── StockLogRepository ────────────────────────────────────────────────────────

type logRepoFake struct{ s *memStore }

func (r *logRepoFake) Append(entry *entity.StockLogEntry) error {
	c := *entry
	r.s.logs = append(r.s.logs, &c)
	return nil
}

func (r *logRepoFake) ListByMedication(medicationID string, limit, offset int) ([]*entity.StockLogEntry, error) {
	var out []*entity.StockLogEntry
	for i := len(r.s.logs) - 1; i >= 0; i-- {
		if r.s.logs[i].MedicationID == medicationID {
			out = append(out, r.s.logs[i])
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *logRepoFake) ListBetween(from, to time.Time) ([]*entity.StockLogEntry, error) {
	var out []*entity.StockLogEntry
	for _, e := range r.s.logs {
		if !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ── NotificationRepository ────────────────────────────────────────────────────

type notifRepoFake struct{ s *memStore }

func (r *notifRepoFake) Create(n *entity.AdminNotification) error {
	c := *n
	r.s.notifs = append(r.s.notifs, &c)
	return nil
}

func (r *notifRepoFake) GetByID(id string) (*entity.AdminNotification, error) {
	for _, n := range r.s.notifs {
		if n.ID == id {
			c := *n
			return &c, nil
		}
	}
	return nil, nil
}

func (r *notifRepoFake) List(onlyUnread bool, limit, offset int) ([]*entity.AdminNotification, error) {
	var out []*entity.AdminNotification
	for i := len(r.s.notifs) - 1; i >= 0; i-- {
		if onlyUnread && r.s.notifs[i].Read {
			continue
		}
		out = append(out, r.s.notifs[i])
	}
	return paginate(out, limit, offset), nil
}

func (r *notifRepoFake) MarkRead(id string) error {
	for _, n := range r.s.notifs {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── RestockRequestRepository ──────────────────────────────────────────────────

type restockRepoFake struct{ s *memStore }

func (r *restockRepoFake) Create(req *entity.RestockRequest) error {
	c := *req
	r.s.restocks[req.ID] = &c
	return nil
}

func (r *restockRepoFake) GetByID(id string) (*entity.RestockRequest, error) {
	req, ok := r.s.restocks[id]
	if !ok {
		return nil, nil
	}
	c := *req
	return &c, nil
}

func (r *restockRepoFake) GetForUpdate(id string) (*entity.RestockRequest, error) {
	return r.GetByID(id)
}

func (r *restockRepoFake) UpdateStatus(id, status, approverID string, at time.Time) error {
	req, ok := r.s.restocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Status = status
	req.ApproverID = &approverID
	req.ApprovedAt = &at
	req.UpdatedAt = at
	return nil
}

func (r *restockRepoFake) MarkCompleted(id string, at time.Time) error {
	req, ok := r.s.restocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Status = entity.RestockStatusCompleted
	req.CompletedAt = &at
	req.UpdatedAt = at
	return nil
}

func (r *restockRepoFake) ListByStatus(status string, limit, offset int) ([]*entity.RestockRequest, error) {
	var out []*entity.RestockRequest
	for _, req := range r.s.restocks {
		if req.Status == status {
			c := *req
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return paginate(out, limit, offset), nil
}

func (r *restockRepoFake) Delete(id string) error {
	if _, ok := r.s.restocks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.restocks, id)
	return nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct{ s *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.MedicationRepository,
	repository.UsageHistoryRepository,
	repository.StockLogRepository,
	repository.NotificationRepository,
	repository.RestockRequestRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	err := fn(
		&medRepoFake{s: r.s},
		&usageRepoFake{s: r.s},
		&logRepoFake{s: r.s},
		&notifRepoFake{s: r.s},
		&restockRepoFake{s: r.s},
	)
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
