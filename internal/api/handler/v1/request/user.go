package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/gatherly/gatherly-api/internal/domain"
)

type UpdateUserRequest struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	Password       *string `json:"password,omitempty"`
}

func (req *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&req.Email, validation.NilOrNotEmpty, is.Email),
	)
	if err != nil {
		return err
	}

	if req.Password != nil {
		if ok, _ := passwordExp.MatchString(*req.Password); !ok {
			return errInvalidPassword
		}
	}

	return nil
}

func (req *UpdateUserRequest) ToUpdate() domain.UserUpdate {
	return domain.UserUpdate{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		ProfilePicture: req.ProfilePicture,
		Password:       req.Password,
	}
}
