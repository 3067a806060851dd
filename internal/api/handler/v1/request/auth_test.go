package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "passw0rd",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(req *SignupRequest)
	}{
		{
			name:   "missing username",
			mutate: func(req *SignupRequest) { req.Username = "" },
		},
		{
			name:   "invalid email",
			mutate: func(req *SignupRequest) { req.Email = "not-an-email" },
		},
		{
			name:   "password too short",
			mutate: func(req *SignupRequest) { req.Password = "pass1" },
		},
		{
			name:   "password without digit",
			mutate: func(req *SignupRequest) { req.Password = "passwords" },
		},
		{
			name:   "password without letter",
			mutate: func(req *SignupRequest) { req.Password = "12345678" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "whatever"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "ada@example.com"}
	assert.Error(t, missing.Validate())
}
