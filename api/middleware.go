package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	"github.com/katatrina/vgvault-BE/internal/token"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	authorizationHeaderKey  = "Authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authPayload"
	accessTokenCookieName   = "access_token"
)

var (
	errMissingToken        = errors.New("authorization header or access_token cookie is not provided")
	errInvalidHeaderFormat = errors.New("invalid authorization header format")
	errUnsupportedAuthType = errors.New("unsupported authorization header type")
)

// accessTokenFromRequest reads the bearer token, then falls back to the cookie.
// Browsers cannot set headers on an EventSource, so streams rely on the cookie.
func accessTokenFromRequest(c *gin.Context) (string, error) {
	authorizationHeader := c.GetHeader(authorizationHeaderKey)
	if authorizationHeader != "" {
		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			return "", errInvalidHeaderFormat
		}
		if strings.ToLower(fields[0]) != authorizationTypeBearer {
			return "", errUnsupportedAuthType
		}
		return fields[1], nil
	}

	if cookie, err := c.Cookie(accessTokenCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	return "", errMissingToken
}

// authMiddleware authenticates the user.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := accessTokenFromRequest(c)
		if err != nil {
			abortWithError(c, apperror.Wrap(apperror.KindUnauthorized, err.Error(), err))
			return
		}

		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			abortWithError(c, apperror.Wrap(apperror.KindUnauthorized, err.Error(), err))
			return
		}

		c.Set(authorizationPayloadKey, payload)
		c.Next()
	}
}

// optionalAuthMiddleware sets the payload when a valid token is present and never aborts.
func optionalAuthMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := accessTokenFromRequest(c)
		if err == nil {
			if payload, err := tokenMaker.VerifyToken(accessToken); err == nil {
				c.Set(authorizationPayloadKey, payload)
			}
		}
		c.Next()
	}
}

func requiredAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)
		if !authPayload.IsAdmin {
			abortWithError(c, apperror.Forbidden("admin access required"))
			return
		}
		c.Next()
	}
}

func authPayloadFromContext(c *gin.Context) (*token.Payload, bool) {
	value, ok := c.Get(authorizationPayloadKey)
	if !ok {
		return nil, false
	}
	payload, ok := value.(*token.Payload)
	return payload, ok
}

// requestLogger writes one access log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var logEvent *zerolog.Event
		switch {
		case status >= 500:
			logEvent = log.Error()
		case status >= 400:
			logEvent = log.Warn()
		default:
			logEvent = log.Info()
		}

		if payload, ok := authPayloadFromContext(c); ok {
			logEvent = logEvent.Str("user_id", payload.UserID.String())
		}

		logEvent.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request handled")
	}
}
