// Package share turns a (settings, coordinates) pair into a signed token
// that regenerates the same system later.
package share

import (
	"fmt"
	"log/slog"
	"time"

	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "cosmos-server"

// Claims carry everything needed to rerun generation. The seed is always
// concrete, never empty or "random".
type Claims struct {
	Settings    settings.GenerationSettings `json:"settings"`
	Coordinates spatial.SpaceCoordinates    `json:"coordinates"`
	jwt.RegisteredClaims
}

type Token struct {
	Token     string    `json:"token"`
	Seed      string    `json:"seed"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Service struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

func NewService(secret string, expiration time.Duration, logger *slog.Logger) (*Service, error) {
	logger.Debug("Initializing share service")

	if len(secret) < 32 {
		return nil, fmt.Errorf("share secret must be at least 32 characters long")
	}
	if expiration <= 0 {
		return nil, fmt.Errorf("share expiration must be positive")
	}

	return &Service{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
		logger:     logger,
	}, nil
}

// Issue resolves the seed and signs the request.
func (s *Service) Issue(gs settings.GenerationSettings, coord spatial.SpaceCoordinates) (*Token, error) {
	logger := s.logger.With("component", "share_service", "operation", "issue")

	gs = gs.ResolveSeed()
	if err := gs.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(s.expiration)
	claims := Claims{
		Settings:    gs,
		Coordinates: coord,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   gs.Seed,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.WrapInternal("failed to sign share token", err)
	}

	logger.Debug("Share token issued", "seed", gs.Seed, "coordinates", coord.String())
	return &Token{
		Token:     signed,
		Seed:      gs.Seed,
		ExpiresAt: jwt.NewNumericDate(expiresAt).Time,
	}, nil
}

// Parse verifies the signature and expiry of a token.
func (s *Service) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.WrapUnauthorized("invalid share token", err)
	}
	if !parsed.Valid {
		return nil, errors.Unauthorized("invalid share token")
	}
	if claims.Settings.NeedsSeed() {
		return nil, errors.Unauthorized("share token carries no seed")
	}

	return claims, nil
}
