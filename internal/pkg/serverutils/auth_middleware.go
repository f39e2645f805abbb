package serverutils

import (
	"time"

	"second-brain-be/internal/repository/contract"
	"second-brain-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalsUserID  = "user_id"
	LocalsSession = "session"
)

// NewAuthMiddleware resolves the caller's identity once per request and is
// applied uniformly to the protected route group. The bearer token is a signed
// JWT carrying a session id; the session record itself lives server-side, so a
// logout revokes access before the token expires.
func NewAuthMiddleware(secret string, sessions contract.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ErrUnauthorized
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ErrUnauthorized
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ErrUnauthorized
		}
		sessionID, ok := claims["session_id"].(string)
		if !ok || sessionID == "" {
			return ErrUnauthorized
		}

		session, err := sessions.Get(ctx.Context(), sessionID)
		if err != nil {
			return err
		}
		if session == nil || session.Expired(time.Now()) {
			return ErrUnauthorized
		}

		ctx.Locals(LocalsUserID, session.UserID)
		ctx.Locals(LocalsSession, session)
		return ctx.Next()
	}
}

// UserID reads the authenticated user id placed in Locals by the middleware.
func UserID(ctx *fiber.Ctx) uuid.UUID {
	id, _ := ctx.Locals(LocalsUserID).(uuid.UUID)
	return id
}

// CurrentSession reads the resolved session record from Locals.
func CurrentSession(ctx *fiber.Ctx) *store.Session {
	s, _ := ctx.Locals(LocalsSession).(*store.Session)
	return s
}
