package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRolePolicy(t *testing.T) {
	tests := []struct {
		role     domain.Role
		orders   bool
		items    bool
		approve  bool
		deleteAt bool
		revert   bool
		audit    bool
	}{
		{domain.RoleAdmin, true, true, true, true, true, true},
		{domain.RoleManager, true, true, true, true, true, true},
		{domain.RoleMiddleManager, true, true, true, false, false, false},
		{domain.RolePersonnel, false, false, false, false, false, false},
		{domain.Role("UNKNOWN"), false, false, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.orders, domain.CanManageOrders(tt.role))
			assert.Equal(t, tt.items, domain.CanManageWorkItems(tt.role))
			assert.Equal(t, tt.approve, domain.CanApproveUpdates(tt.role))
			assert.Equal(t, tt.deleteAt, domain.CanDeleteAttachments(tt.role))
			assert.Equal(t, tt.revert, domain.CanRevertStatus(tt.role))
			assert.Equal(t, tt.audit, domain.CanViewAudit(tt.role))
		})
	}
}

func TestCapabilitiesOf(t *testing.T) {
	assert.Equal(t, domain.AllCapabilities, domain.CapabilitiesOf(domain.RoleAdmin))
	assert.Empty(t, domain.CapabilitiesOf(domain.RolePersonnel))
	assert.NotContains(t, domain.CapabilitiesOf(domain.RoleManager), domain.CapManageUsers)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleMiddleManager.IsValid())
	assert.False(t, domain.Role("middle_manager").IsValid())
	assert.False(t, domain.Role("").IsValid())
}

func TestWorkItemStatus(t *testing.T) {
	for _, s := range domain.AllWorkItemStatuses {
		assert.True(t, s.IsValid(), s)
		assert.Equal(t, s == domain.StatusDone || s == domain.StatusCancelled, s.IsTerminal(), s)
	}
	assert.False(t, domain.WorkItemStatus("FINISHED").IsValid())
}

func TestValidProgressStep(t *testing.T) {
	assert.True(t, domain.ValidProgressStep(0))
	assert.True(t, domain.ValidProgressStep(10))
	assert.False(t, domain.ValidProgressStep(-1))
	assert.False(t, domain.ValidProgressStep(11))
}

func TestNewWorkItem_StartsFresh(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	item := domain.NewWorkItem("wi-1", "ord-1", "ws-1", nil, nil, "u-1", now)

	assert.Equal(t, domain.StatusNew, item.CurrentStatus)
	assert.Equal(t, 0, item.ProgressStep)
	assert.Nil(t, item.ArchivedAt)
	assert.Nil(t, item.AssignedPersonnelID)
	assert.Equal(t, now, item.CreatedAt)
	assert.Equal(t, now, item.LastUpdatedAt)
}

func TestAttachmentStoragePath(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "order/ord-1/1700000000123.pdf",
		domain.AttachmentStoragePath(domain.AttachmentOnOrder, "ord-1", "Drawing.final.pdf", at))
	assert.Equal(t, "work_item/wi-1/1700000000123.bin",
		domain.AttachmentStoragePath(domain.AttachmentOnWorkItem, "wi-1", "README", at))
}

func TestWorkItemUpdate_IsResolved(t *testing.T) {
	assert.False(t, domain.WorkItemUpdate{State: domain.UpdatePending}.IsResolved())
	assert.True(t, domain.WorkItemUpdate{State: domain.UpdateRejected}.IsResolved())
}
