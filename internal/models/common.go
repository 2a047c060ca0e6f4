package models

import "time"

// AuditFields holds the creation/modification columns shared by owned tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"updated_at"`
}
