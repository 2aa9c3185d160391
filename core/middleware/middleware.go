package middleware

import (
	stderrors "errors"
	"strings"

	"meeting-planner/core/constants"
	"meeting-planner/core/controller"
	"meeting-planner/core/errors"
	"meeting-planner/core/logger"
	"meeting-planner/core/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	controller.BaseController
}

func NewMiddleware() *Middleware {
	return &Middleware{BaseController: controller.NewBaseController()}
}

// AuthMiddleware validates the bearer token and stores its claims under
// constants.ContextTokenData. When the route has a :code param it must name
// the meeting the token was issued for; that check lives in the service.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(constants.HeaderAuthorization)
			if header == "" {
				return m.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing authorization header")
			}

			prefix := constants.AuthorizationType + " "
			if !strings.HasPrefix(header, prefix) {
				return m.Unauthorized(errors.ErrInvalidTokenFormat, "Invalid authorization header format")
			}
			token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
			if token == "" {
				return m.Unauthorized(errors.ErrInvalidTokenFormat, "Invalid authorization header format")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:ValidateAndParseToken", "error", err)
				if stderrors.Is(err, jwt.ErrTokenExpired) {
					return m.Unauthorized(errors.ErrTokenExpired, "Token has expired")
				}
				return m.Unauthorized(errors.ErrUnauthorized, "Invalid token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// HostOnly must run after AuthMiddleware.
func (m *Middleware) HostOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok || claims == nil {
				return m.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
			}
			if !claims.IsHost() {
				return m.Forbidden(errors.ErrForbidden, "Only the host can access this resource")
			}
			return next(c)
		}
	}
}
