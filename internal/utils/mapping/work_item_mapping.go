package mapping

import (
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/models"
)

// ToModelWorkItem converts a domain WorkItem to a model WorkItem
func ToModelWorkItem(d domain.WorkItem) models.WorkItem {
	return models.WorkItem{
		WorkItemID:          d.WorkItemID,
		OrderID:             d.OrderID,
		WorkshopID:          d.WorkshopID,
		AssignedPersonnelID: toNullString(d.AssignedPersonnelID),
		Title:               toNullString(d.Title),
		Description:         toNullString(d.Description),
		CurrentStatus:       models.WorkItemStatus(d.CurrentStatus),
		ProgressStep:        int16(d.ProgressStep),
		ArchivedAt:          toNullTime(d.ArchivedAt),
		UpdatedBy:           toNullString(d.UpdatedBy),
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkItem converts a model WorkItem to a domain WorkItem
func ToDomainWorkItem(m models.WorkItem) domain.WorkItem {
	return domain.WorkItem{
		WorkItemID:          m.WorkItemID,
		OrderID:             m.OrderID,
		WorkshopID:          m.WorkshopID,
		AssignedPersonnelID: fromNullString(m.AssignedPersonnelID),
		Title:               fromNullString(m.Title),
		Description:         fromNullString(m.Description),
		CurrentStatus:       domain.WorkItemStatus(m.CurrentStatus),
		ProgressStep:        int(m.ProgressStep),
		ArchivedAt:          fromNullTime(m.ArchivedAt),
		UpdatedBy:           fromNullString(m.UpdatedBy),
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkItemSlice converts a slice of model WorkItems to a slice of domain WorkItems
func ToDomainWorkItemSlice(ms []models.WorkItem) []domain.WorkItem {
	ds := make([]domain.WorkItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkItem(m)
	}
	return ds
}

// ToModelWorkItemUpdate converts a domain WorkItemUpdate to a model WorkItemUpdate
func ToModelWorkItemUpdate(d domain.WorkItemUpdate) models.WorkItemUpdate {
	m := models.WorkItemUpdate{
		UpdateID:              d.UpdateID,
		WorkItemID:            d.WorkItemID,
		RequestedBy:           d.RequestedByUserID,
		RequestedProgressStep: toNullInt16(d.RequestedProgressStep),
		RequestedNote:         toNullString(d.RequestedNote),
		State:                 string(d.State),
		ReviewerID:            toNullString(d.ReviewerUserID),
		ReviewedAt:            toNullTime(d.ReviewedAt),
		ReviewNote:            toNullString(d.ReviewNote),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
	if d.RequestedStatus != nil {
		m.RequestedStatus.String = string(*d.RequestedStatus)
		m.RequestedStatus.Valid = true
	}
	return m
}

// ToDomainWorkItemUpdate converts a model WorkItemUpdate to a domain WorkItemUpdate
func ToDomainWorkItemUpdate(m models.WorkItemUpdate) domain.WorkItemUpdate {
	d := domain.WorkItemUpdate{
		UpdateID:              m.UpdateID,
		WorkItemID:            m.WorkItemID,
		RequestedByUserID:     m.RequestedBy,
		RequestedProgressStep: fromNullInt16(m.RequestedProgressStep),
		RequestedNote:         fromNullString(m.RequestedNote),
		State:                 domain.UpdateState(m.State),
		ReviewerUserID:        fromNullString(m.ReviewerID),
		ReviewedAt:            fromNullTime(m.ReviewedAt),
		ReviewNote:            fromNullString(m.ReviewNote),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if m.RequestedStatus.Valid {
		status := domain.WorkItemStatus(m.RequestedStatus.String)
		d.RequestedStatus = &status
	}
	return d
}

// ToDomainWorkItemUpdateSlice converts a slice of model updates to domain updates
func ToDomainWorkItemUpdateSlice(ms []models.WorkItemUpdate) []domain.WorkItemUpdate {
	ds := make([]domain.WorkItemUpdate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkItemUpdate(m)
	}
	return ds
}
