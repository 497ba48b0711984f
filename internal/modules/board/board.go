// Package board holds the fetched lead list in memory and reconciles it
// with confirmed store results: the list is only patched after the
// gateway reports success, never optimistically before.
package board

import (
	"sync"
	"time"

	"buyerleads/internal/domain"
)

// Controller owns the in-memory lead index, the single edit draft and
// the transient notices for one loaded view. All mutation goes through
// the mutex; there is exactly one controller per view.
type Controller struct {
	mu        sync.Mutex
	leads     map[int64]domain.BuyerLead
	order     []int64 // newest first, mirrors the store's created_at DESC
	editingID int64   // 0 = nothing in edit mode
	draft     *domain.BuyerLead
	notices   []Notice
	noticeTTL time.Duration
	now       func() time.Time
}

func NewController() *Controller {
	return &Controller{
		leads:     make(map[int64]domain.BuyerLead),
		noticeTTL: DefaultNoticeTTL,
		now:       time.Now,
	}
}

// Load replaces the whole index with a freshly fetched list. Any open
// edit draft is discarded.
func (b *Controller) Load(leads []domain.BuyerLead) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.leads = make(map[int64]domain.BuyerLead, len(leads))
	b.order = b.order[:0]
	for _, l := range leads {
		b.leads[l.ID] = l
		b.order = append(b.order, l.ID)
	}
	b.editingID = 0
	b.draft = nil
}

// Leads returns the current list snapshot, newest first.
func (b *Controller) Leads() []domain.BuyerLead {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.BuyerLead, 0, len(b.order))
	for _, id := range b.order {
		if l, ok := b.leads[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

// BeginEdit puts one record into edit mode. Starting an edit while
// another record's draft is open silently discards that draft: at most
// one record is ever in edit mode.
func (b *Controller) BeginEdit(id int64) (domain.BuyerLead, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.leads[id]
	if !ok {
		return domain.BuyerLead{}, false
	}

	draft := l
	b.editingID = id
	b.draft = &draft
	return draft, true
}

// Draft returns the in-progress edit copy, if any.
func (b *Controller) Draft() (domain.BuyerLead, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.draft == nil {
		return domain.BuyerLead{}, false
	}
	return *b.draft, true
}

// UpdateDraft mutates the open draft in place. It never touches the
// list: only a confirmed store result does that.
func (b *Controller) UpdateDraft(mutate func(*domain.BuyerLead)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.draft == nil {
		return false
	}
	mutate(b.draft)
	return true
}

// CancelEdit discards the draft without contacting the store.
func (b *Controller) CancelEdit() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.editingID = 0
	b.draft = nil
}

// EditingID returns the id currently in edit mode, 0 if none.
func (b *Controller) EditingID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editingID
}

// ApplyCreated patches a store-confirmed insert into the index. New
// records go to the front, matching created_at DESC ordering.
func (b *Controller) ApplyCreated(l domain.BuyerLead) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.leads[l.ID]; !exists {
		b.order = append([]int64{l.ID}, b.order...)
	}
	b.leads[l.ID] = l
	b.pushNotice("Buyer lead created successfully", NoticeSuccess)
}

// ApplyUpdated patches a store-confirmed edit into the index and closes
// the record's edit mode.
func (b *Controller) ApplyUpdated(l domain.BuyerLead) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.leads[l.ID]; !exists {
		return
	}
	b.leads[l.ID] = l
	if b.editingID == l.ID {
		b.editingID = 0
		b.draft = nil
	}
	b.pushNotice("Data updated successfully", NoticeSuccess)
}

// ApplyDeleted removes a store-confirmed delete from the index.
func (b *Controller) ApplyDeleted(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.leads[id]; !exists {
		return
	}
	delete(b.leads, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	if b.editingID == id {
		b.editingID = 0
		b.draft = nil
	}
	b.pushNotice("Data deleted successfully", NoticeSuccess)
}

// Fail surfaces a store failure as a transient error notice. The list
// is left untouched: a failed operation changes nothing locally.
func (b *Controller) Fail(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pushNotice(message, NoticeError)
}

// Notices returns the still-visible notices, pruning expired ones.
func (b *Controller) Notices() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	alive := b.notices[:0]
	for _, n := range b.notices {
		if n.ExpiresAt.After(now) {
			alive = append(alive, n)
		}
	}
	b.notices = alive

	out := make([]Notice, len(alive))
	copy(out, alive)
	return out
}

func (b *Controller) pushNotice(message string, kind NoticeKind) {
	b.notices = append(b.notices, Notice{
		Message:   message,
		Kind:      kind,
		ExpiresAt: b.now().Add(b.noticeTTL),
	})
}
