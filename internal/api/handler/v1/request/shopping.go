package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/gatherly/gatherly-api/internal/domain"
)

type AddShoppingItemRequest struct {
	EventID     uint   `json:"event_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit,omitempty"`
	ArrivalTime string `json:"arrival_time,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

func (req *AddShoppingItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

func (req *AddShoppingItemRequest) ToItem(userID uint) domain.ShoppingItem {
	return domain.ShoppingItem{
		EventID:     req.EventID,
		UserID:      userID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		ArrivalTime: req.ArrivalTime,
		Notes:       req.Notes,
	}
}
