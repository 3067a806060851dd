package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/gatherly-api/internal/api/handler/v1/response"
	"github.com/gatherly/gatherly-api/internal/pkg/jwthelper"
)

// ContextKeyUserID is where VerifyJWT stores the authenticated user id.
const ContextKeyUserID = "userID"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid Bearer token and stashes
// the token's user id in the gin context for the handlers.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.AbortWithErr(ctx, response.ErrUnauthorized())
			return
		}

		userID, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.AbortWithErr(ctx, response.ErrUnauthorized())
			return
		}

		ctx.Set(ContextKeyUserID, userID)
		ctx.Next()
	}
}
