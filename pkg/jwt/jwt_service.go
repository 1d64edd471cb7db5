package jwt

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"emenu/domain"
	"emenu/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID uint) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (uint, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "EMENU",
	}
}

func (j *jwtService) GenerateTokenUser(userID uint) string {
	claims := jwtUserClaim{
		strconv.FormatUint(uint64(userID), 10),
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (uint, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domain.ErrTokenExpired
		}
		return 0, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return 0, domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)

	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenInvalid
	}
	return uint(id), nil
}
