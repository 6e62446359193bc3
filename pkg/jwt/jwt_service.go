package jwt

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/internal/utils"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService verifies bearer credentials issued by the identity
	// provider. GenerateToken exists for local development and tests; in
	// production tokens come signed from the provider with the shared
	// secret.
	JWTService interface {
		GenerateToken(claims domain.AuthClaims, duration time.Duration) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetClaimsByToken(token string) (domain.AuthClaims, error)
	}

	jwtUserClaim struct {
		Email    string `json:"email"`
		FullName string `json:"full_name,omitempty"`
		Name     string `json:"name,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "SKINSENSE",
	}
}

func (j *jwtService) GenerateToken(claims domain.AuthClaims, duration time.Duration) (string, error) {
	userClaims := jwtUserClaim{
		Email:    claims.Email,
		FullName: claims.FullName,
		Name:     claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetClaimsByToken(token string) (domain.AuthClaims, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.AuthClaims{}, domain.ErrTokenExpired
		}
		return domain.AuthClaims{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return domain.AuthClaims{}, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)

	return domain.AuthClaims{
		UserID:   claims.Subject,
		Email:    claims.Email,
		FullName: claims.FullName,
		Name:     claims.Name,
	}, nil
}
