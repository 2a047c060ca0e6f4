package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestWorkItemMapping_PreservesNullableFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	title := "Frame welding"
	updatedBy := "user-2"

	item := domain.WorkItem{
		WorkItemID:    "wi-1",
		OrderID:       "ord-1",
		WorkshopID:    "ws-1",
		Title:         &title,
		CurrentStatus: domain.StatusDone,
		ProgressStep:  10,
		ArchivedAt:    &now,
		UpdatedBy:     &updatedBy,
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now},
	}

	model := ToModelWorkItem(item)
	assert.True(t, model.Title.Valid)
	assert.False(t, model.Description.Valid)
	assert.False(t, model.AssignedPersonnelID.Valid)
	assert.True(t, model.ArchivedAt.Valid)

	assert.Equal(t, item, ToDomainWorkItem(model))
}

func TestWorkItemUpdateMapping_NilRequestedValues(t *testing.T) {
	update := domain.WorkItemUpdate{
		UpdateID:          "upd-1",
		WorkItemID:        "wi-1",
		RequestedByUserID: "user-3",
		State:             domain.UpdatePending,
	}

	model := ToModelWorkItemUpdate(update)
	assert.False(t, model.RequestedStatus.Valid)
	assert.False(t, model.RequestedProgressStep.Valid)

	back := ToDomainWorkItemUpdate(model)
	assert.Nil(t, back.RequestedStatus)
	assert.Nil(t, back.RequestedProgressStep)
	assert.Nil(t, back.ReviewerUserID)

	status := domain.StatusOnHold
	step := 0
	update.RequestedStatus = &status
	update.RequestedProgressStep = &step
	back = ToDomainWorkItemUpdate(ToModelWorkItemUpdate(update))
	assert.Equal(t, domain.StatusOnHold, *back.RequestedStatus)
	assert.Equal(t, 0, *back.RequestedProgressStep, "zero progress must survive the round trip")
}
