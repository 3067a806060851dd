package domain

import "time"

type ShoppingItem struct {
	ID          uint      `json:"id"`
	EventID     uint      `json:"event_id"`
	UserID      uint      `json:"user_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	ArrivalTime string    `json:"arrival_time,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsBrought   bool      `json:"is_brought"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ShoppingList aggregates an event's items with brought/pending stats.
type ShoppingList struct {
	EventID      uint           `json:"event_id"`
	TotalItems   int            `json:"total_items"`
	BroughtItems int            `json:"brought_items"`
	PendingItems int            `json:"pending_items"`
	Items        []ShoppingItem `json:"items"`
}
