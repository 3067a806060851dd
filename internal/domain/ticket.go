package domain

import "time"

type TicketType struct {
	ID           uint      `json:"id"`
	EventID      uint      `json:"event_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	MaxPerPerson int       `json:"max_per_person"`
	SoldCount    int       `json:"sold_count"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AvailableCount derives remaining inventory; it is never stored.
func (t *TicketType) AvailableCount() int {
	if n := t.Quantity - t.SoldCount; n > 0 {
		return n
	}

	return 0
}

// BuyerInfo is the typed purchase contact block.
type BuyerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type Ticket struct {
	ID           uint       `json:"id"`
	TicketTypeID uint       `json:"ticket_type_id"`
	EventID      uint       `json:"event_id"`
	BuyerID      uint       `json:"buyer_id"`
	BuyerInfo    BuyerInfo  `json:"buyer_info"`
	TicketNumber string     `json:"ticket_number"`
	PurchaseDate time.Time  `json:"purchase_date"`
	IsValid      bool       `json:"is_valid"`
	CheckedIn    bool       `json:"checked_in"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
}
