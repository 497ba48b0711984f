package board

import (
	"testing"
	"time"

	"buyerleads/internal/domain"

	"github.com/stretchr/testify/assert"
)

func lead(id int64, name string) domain.BuyerLead {
	return domain.BuyerLead{
		ID:       id,
		FullName: name,
		Status:   domain.StatusNew,
	}
}

func TestController_LoadAndOrder(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(3, "c"), lead(2, "b"), lead(1, "a")})

	leads := b.Leads()
	assert.Len(t, leads, 3)
	assert.Equal(t, int64(3), leads[0].ID)
	assert.Equal(t, int64(1), leads[2].ID)
}

func TestController_ApplyCreated_PrependsNewest(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(1, "a")})

	b.ApplyCreated(lead(2, "b"))

	leads := b.Leads()
	assert.Equal(t, int64(2), leads[0].ID)
	assert.Equal(t, int64(1), leads[1].ID)
}

func TestController_ApplyUpdated_PatchesWithoutRefetch(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(1, "a")})

	updated := lead(1, "a")
	updated.Status = domain.StatusConverted
	b.ApplyUpdated(updated)

	leads := b.Leads()
	assert.Equal(t, domain.StatusConverted, leads[0].Status)
	assert.Equal(t, "a", leads[0].FullName)
}

func TestController_ApplyDeleted(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(2, "b"), lead(1, "a")})

	b.ApplyDeleted(1)

	leads := b.Leads()
	assert.Len(t, leads, 1)
	assert.Equal(t, int64(2), leads[0].ID)
}

func TestController_SingleEditFocus(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(2, "b"), lead(1, "a")})

	_, ok := b.BeginEdit(1)
	assert.True(t, ok)
	b.UpdateDraft(func(l *domain.BuyerLead) { l.FullName = "a (edited)" })

	// starting an edit of record 2 silently discards record 1's draft
	draft, ok := b.BeginEdit(2)
	assert.True(t, ok)
	assert.Equal(t, int64(2), b.EditingID())
	assert.Equal(t, "b", draft.FullName)

	// the discarded draft never reached the list
	leads := b.Leads()
	assert.Equal(t, "a", leads[1].FullName)
}

func TestController_CancelEditDiscardsDraft(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(1, "a")})

	b.BeginEdit(1)
	b.UpdateDraft(func(l *domain.BuyerLead) { l.FullName = "changed" })
	b.CancelEdit()

	assert.Equal(t, int64(0), b.EditingID())
	_, ok := b.Draft()
	assert.False(t, ok)
	assert.Equal(t, "a", b.Leads()[0].FullName)
}

func TestController_EditModeClosesOnConfirmedUpdate(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(1, "a")})

	b.BeginEdit(1)
	updated := lead(1, "a2")
	b.ApplyUpdated(updated)

	assert.Equal(t, int64(0), b.EditingID())
	assert.Equal(t, "a2", b.Leads()[0].FullName)
}

func TestController_NoticesExpire(t *testing.T) {
	b := NewController()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return clock }

	b.Load([]domain.BuyerLead{lead(1, "a")})
	b.ApplyDeleted(1)
	b.Fail("Error saving data: connection reset")

	notices := b.Notices()
	assert.Len(t, notices, 2)
	assert.Equal(t, NoticeSuccess, notices[0].Kind)
	assert.Equal(t, NoticeError, notices[1].Kind)

	// notices self-dismiss after the fixed duration
	clock = clock.Add(DefaultNoticeTTL + time.Millisecond)
	assert.Empty(t, b.Notices())
}

func TestController_FailLeavesListUntouched(t *testing.T) {
	b := NewController()
	b.Load([]domain.BuyerLead{lead(1, "a")})

	b.Fail("Error deleting data: not found")

	assert.Len(t, b.Leads(), 1)
}
