package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/skulafrica/sitebuilder/core"
)

// Claims represents the authorization claims transmitted via a JWT.
// Tokens are issued by the platform's account service; this API only
// verifies them. A school admin token carries the school's subdomain;
// a platform admin token carries no subdomain and passes for any school.
type Claims struct {
	jwt.StandardClaims
	Subdomain string `json:"subdomain,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
}

const jwtContextKey = "userToken"

// newJWTConfig builds the JWT auth middleware config for admin endpoints.
func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    jwtContextKey,
		Claims:        new(Claims),
	}
}

// GetAdminClaims builds the claims for a school admin token; an empty
// subdomain makes a platform admin token.
func GetAdminClaims(conf *core.Config, subject, subdomain string) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   subject,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Subdomain: subdomain,
		IsAdmin:   true,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(jwtContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}
