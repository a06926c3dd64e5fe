package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// ClaimClientID - claim токена с идентификатором клиента
const ClaimClientID = "client_id"

// GetClientID - извлекает идентификатор клиента из контекста JWT токена
func GetClientID(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	clientID, ok := claims[ClaimClientID].(string)
	if !ok || clientID == "" {
		logger.Warn("Undefined client id from token")
		return "", fmt.Errorf("undefined client id")
	}
	return clientID, nil
}
