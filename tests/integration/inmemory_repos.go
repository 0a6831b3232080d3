package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"vcard-payments/internal/core/domain"
	"vcard-payments/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- In-Memory Ledger Repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{}
}

func (r *inMemoryLedgerRepo) Insert(ctx context.Context, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryLedgerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *inMemoryLedgerRepo) GetLatestPayment(ctx context.Context, orderRef string) (*domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.LedgerEntry
	for i := range r.entries {
		e := r.entries[i]
		if e.OrderReference != orderRef || e.Kind != domain.LedgerKindPayment {
			continue
		}
		if latest == nil || !e.CreatedAt.Before(latest.CreatedAt) {
			latest = &e
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (r *inMemoryLedgerRepo) SumRefunded(ctx context.Context, orderRef string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := decimal.Zero
	for i := range r.entries {
		e := r.entries[i]
		if e.OrderReference == orderRef && e.Kind == domain.LedgerKindRefund {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *inMemoryLedgerRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			out = append(out, r.entries[i])
			if len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// --- In-Memory Pending Refund Repo ---

type inMemoryPendingRefundRepo struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*domain.PendingRefundRequest
	profiles *inMemoryProfileRepo
}

func newInMemoryPendingRefundRepo(profiles *inMemoryProfileRepo) *inMemoryPendingRefundRepo {
	return &inMemoryPendingRefundRepo{
		requests: make(map[uuid.UUID]*domain.PendingRefundRequest),
		profiles: profiles,
	}
}

func (r *inMemoryPendingRefundRepo) Create(ctx context.Context, req *domain.PendingRefundRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *inMemoryPendingRefundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PendingRefundRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryPendingRefundRepo) List(ctx context.Context, params ports.ListPendingParams) ([]ports.PendingRefundView, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.PendingRefundRequest
	for _, req := range r.requests {
		if req.Status == params.Status {
			matched = append(matched, req)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if params.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[params.Offset:]
	if len(matched) > params.Limit {
		matched = matched[:params.Limit]
	}

	views := make([]ports.PendingRefundView, 0, len(matched))
	for _, req := range matched {
		view := ports.PendingRefundView{PendingRefundRequest: *req}
		if r.profiles != nil {
			if p, _ := r.profiles.GetByID(ctx, req.UserID); p != nil {
				view.RequesterName = p.DisplayName
			}
		}
		views = append(views, view)
	}
	return views, total, nil
}

func (r *inMemoryPendingRefundRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RefundRequestStatus, resolvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return fmt.Errorf("refund request not found")
	}
	req.Status = status
	req.ResolvedAt = &resolvedAt
	return nil
}

// --- In-Memory Profile Repo ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.Profile
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (r *inMemoryProfileRepo) add(p domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = &p
}

func (r *inMemoryProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryProfileRepo) GetRole(ctx context.Context, id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return "", nil
	}
	return p.Role, nil
}
