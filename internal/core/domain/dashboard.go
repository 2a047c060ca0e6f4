package domain

// DashboardSummary aggregates the shop-floor overview.
type DashboardSummary struct {
	OpenByStatus   map[WorkItemStatus]int `json:"openByStatus"`
	TotalOpen      int                    `json:"totalOpen"`
	StaleOnHold    int                    `json:"staleOnHold"`
	PendingUpdates int                    `json:"pendingUpdates"`
}
