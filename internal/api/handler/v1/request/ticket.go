package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/gatherly/gatherly-api/internal/domain"
)

type CreateTicketTypeRequest struct {
	EventID      uint    `json:"event_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	MaxPerPerson int     `json:"max_per_person"`
}

func (req *CreateTicketTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Price, validation.Min(0.0)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&req.MaxPerPerson, validation.Required, validation.Min(1)),
	)
}

func (req *CreateTicketTypeRequest) ToTicketType() domain.TicketType {
	return domain.TicketType{
		EventID:      req.EventID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Quantity:     req.Quantity,
		MaxPerPerson: req.MaxPerPerson,
	}
}

type PurchaseTicketRequest struct {
	TicketTypeID uint   `json:"ticket_type_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

func (req *PurchaseTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketTypeID, validation.Required),
		validation.Field(&req.FirstName, validation.Required),
		validation.Field(&req.LastName, validation.Required),
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

func (req *PurchaseTicketRequest) ToBuyerInfo() domain.BuyerInfo {
	return domain.BuyerInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
	}
}
