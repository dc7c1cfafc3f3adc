package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/infrastructure/config"
	"autocare_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	actorKey = "actor"

	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
)

var (
	errUnauthorized  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbiddenRole = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this route", http.StatusForbidden)

	errInvalidActor = errors.New("token does not carry a valid subject and role")
)

// Claims carries the caller identity: sub is the actor id, role one of entities.Role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate resolves the caller into an entities.Actor.
//
// With a JWT secret configured, an HS256 Bearer token is required (websocket clients may
// pass it as ?token=). Without one the service runs in local mode and trusts the
// X-Actor-ID / X-Actor-Role headers.
func Authenticate(cfg config.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			actor entities.Actor
			err   error
		)
		if cfg.JWTSecret == "" {
			actor, err = actorFromHeaders(c)
		} else {
			actor, err = actorFromToken(c, cfg)
		}
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.WithMessage(err.Error()).ToHTTPError())
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles. Admins always pass.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if actor.IsAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbiddenRole.HTTPStatus, errForbiddenRole.ToHTTPError())
	}
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

// IssueToken signs a token for actor. Used by local tooling and tests.
func IssueToken(cfg config.Auth, actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}

func actorFromHeaders(c *gin.Context) (entities.Actor, error) {
	actor := entities.Actor{
		ID:   strings.TrimSpace(c.GetHeader(HeaderActorID)),
		Role: entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole)))),
	}
	if actor.ID == "" || !actor.Role.Valid() {
		return entities.Actor{}, errors.New("missing or invalid " + HeaderActorID + "/" + HeaderActorRole + " headers")
	}
	return actor, nil
}

func actorFromToken(c *gin.Context, cfg config.Auth) (entities.Actor, error) {
	tokenStr := ""
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return entities.Actor{}, errors.New("authorization header format must be Bearer {token}")
		}
		tokenStr = strings.TrimSpace(parts[1])
	} else {
		tokenStr = c.Query("token")
	}
	if tokenStr == "" {
		return entities.Actor{}, errors.New("bearer token required")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil || !token.Valid {
		return entities.Actor{}, errors.New("invalid token")
	}

	actor := entities.Actor{ID: claims.Subject, Role: entities.Role(claims.Role)}
	if actor.ID == "" || !actor.Role.Valid() {
		return entities.Actor{}, errInvalidActor
	}
	return actor, nil
}
