package domain

import "time"

type Customer struct {
	CustomerID string    `json:"customerID" db:"customer_id"`
	Name       string    `json:"name" db:"name"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	Note       *string   `json:"note,omitempty" db:"note"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

type Product struct {
	ProductID     string    `json:"productID" db:"product_id"`
	Name          string    `json:"name" db:"name"`
	TechnicalNote *string   `json:"technicalNote,omitempty" db:"technical_note"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

type Workshop struct {
	WorkshopID string    `json:"workshopID" db:"workshop_id"`
	Name       string    `json:"name" db:"name"`
	Location   *string   `json:"location,omitempty" db:"location"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
