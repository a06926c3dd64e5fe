package services

import (
	"time"

	"github.com/denmor86/landed-cost/internal/helpers"
	"github.com/go-chi/jwtauth/v5"
)

// ClaimClientID - claim токена с идентификатором клиента, владельца задач
const ClaimClientID = helpers.ClaimClientID

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
}

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(secret string) *Identity {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(secret), nil)
	return &Identity{JWTAuth: tokenAuth}
}

// Создание строки JWT токена для клиента
func (i *Identity) GenerateJWT(clientID string) (string, error) {
	claims := map[string]interface{}{ClaimClientID: clientID}
	jwtauth.SetExpiry(claims, time.Now().Add(TokenExpirationTime))
	_, tokenString, err := i.JWTAuth.Encode(claims)
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
