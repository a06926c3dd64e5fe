package helpers

import (
	"context"
	"testing"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

func TestGetClientID(t *testing.T) {
	if err := logger.Initialize("debug"); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	tokenAuth := jwtauth.New("HS256", []byte("secret"), nil)

	testCases := []struct {
		Name          string
		Claims        map[string]interface{}
		Expected      string
		ExpectedError bool
	}{
		{Name: "Success. Client id from token #1", Claims: map[string]interface{}{ClaimClientID: "shop-42"}, Expected: "shop-42"},
		{Name: "Error. Claim is missing #2", Claims: map[string]interface{}{"username": "shop-42"}, ExpectedError: true},
		{Name: "Error. Claim is not a string #3", Claims: map[string]interface{}{ClaimClientID: 42}, ExpectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			token, _, err := tokenAuth.Encode(tc.Claims)
			if err != nil {
				t.Fatalf("failed to encode token: %v", err)
			}
			ctx := jwtauth.NewContext(context.Background(), token, nil)
			clientID, err := GetClientID(ctx)
			if (err != nil) != tc.ExpectedError {
				t.Fatalf("Expected error=%v, got: %v", tc.ExpectedError, err)
			}
			if clientID != tc.Expected {
				t.Errorf("Expected %q, got: %q", tc.Expected, clientID)
			}
		})
	}
}
