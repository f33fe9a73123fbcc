package exts

import (
	"crypto/ed25519"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const AuthCookieName = "passport_auth_key"

var ErrLoginRequired = errors.New("login required")

// AccountClaims is the payload of tokens issued by the account service.
// The subject holds the numeric account id.
type AccountClaims struct {
	jwt.RegisteredClaims

	Name string `json:"name"`
	Nick string `json:"nick"`
}

func (v AccountClaims) AccountID() (uint, error) {
	id, err := strconv.ParseUint(v.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject %q", v.Subject)
	}
	return uint(id), nil
}

// TokenReader verifies EdDSA signed tokens with the account service public key.
type TokenReader struct {
	key ed25519.PublicKey
}

func NewTokenReader(fp string) (*TokenReader, error) {
	raw, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("unable to read public key: %v", err)
	}
	key, err := jwt.ParseEdPublicKeyFromPEM(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key: %v", err)
	}
	pk, ok := key.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is not an ed25519 key")
	}
	return NewTokenReaderWithKey(pk), nil
}

func NewTokenReaderWithKey(key ed25519.PublicKey) *TokenReader {
	return &TokenReader{key: key}
}

func (v *TokenReader) ReadClaims(token string) (*AccountClaims, error) {
	var claims AccountClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()})); err != nil {
		return nil, err
	}
	return &claims, nil
}

func extractToken(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Cookies(AuthCookieName)
}

// ContextMiddleware resolves the viewer from the request token and stores it as the "user" local.
// Requests with a missing or invalid token continue anonymously.
func ContextMiddleware(reader *TokenReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if reader == nil {
			return c.Next()
		}
		token := extractToken(c)
		if len(token) == 0 {
			return c.Next()
		}

		claims, err := reader.ReadClaims(token)
		if err != nil {
			log.Debug().Err(err).Msg("Ignored an invalid token...")
			return c.Next()
		}
		id, err := claims.AccountID()
		if err != nil {
			log.Debug().Err(err).Msg("Ignored a token without account...")
			return c.Next()
		}

		account, err := services.EnsureAccount(models.Account{
			BaseModel: models.BaseModel{ID: id},
			Name:      claims.Name,
			Nick:      claims.Nick,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		c.Locals("user", account)
		return c.Next()
	}
}

func GetViewer(c *fiber.Ctx) *models.Account {
	if user, authenticated := c.Locals("user").(models.Account); authenticated {
		return &user
	}
	return nil
}

func EnsureAuthenticated(c *fiber.Ctx) error {
	if _, authenticated := c.Locals("user").(models.Account); !authenticated {
		return ErrLoginRequired
	}
	return nil
}

// EnsureAdmin checks the administrator token, an empty configured token disables admin access.
func EnsureAdmin(c *fiber.Ctx) error {
	expected := viper.GetString("security.admin_token")
	if len(expected) == 0 {
		return fiber.NewError(fiber.StatusForbidden, "admin access is disabled")
	}
	if subtle.ConstantTimeCompare([]byte(c.Get("X-Admin-Token")), []byte(expected)) != 1 {
		return fiber.NewError(fiber.StatusForbidden, "invalid admin token")
	}
	return nil
}

// LoginRedirectURL points to the login page with next set to the current request.
func LoginRedirectURL(c *fiber.Ctx) string {
	target := viper.GetString("security.login_url")
	if len(target) == 0 {
		target = "/auth/login/"
	}
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	query := u.Query()
	query.Set("next", c.OriginalURL())
	u.RawQuery = query.Encode()
	return u.String()
}
