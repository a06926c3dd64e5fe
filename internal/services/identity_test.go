package services

import (
	"testing"
)

func TestIdentity_GenerateJWT(t *testing.T) {
	identity := NewIdentity("test-secret")

	testCases := []struct {
		Name     string
		ClientID string
	}{
		{Name: "Success. Token carries client id #1", ClientID: "shop-42"},
		{Name: "Success. Empty client id is encoded as is #2", ClientID: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tokenString, err := identity.GenerateJWT(tc.ClientID)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			token, err := identity.GetTokenAuth().Decode(tokenString)
			if err != nil {
				t.Fatalf("failed to decode token: %v", err)
			}
			claim, ok := token.Get(ClaimClientID)
			if !ok || claim.(string) != tc.ClientID {
				t.Errorf("Expected client id %q, got: %v", tc.ClientID, claim)
			}
			if token.Expiration().IsZero() {
				t.Errorf("Expected token expiry to be set")
			}
		})
	}
}

func TestIdentity_WrongSecret(t *testing.T) {
	tokenString, err := NewIdentity("first").GenerateJWT("client")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := NewIdentity("second").GetTokenAuth().Decode(tokenString); err == nil {
		t.Errorf("Expected signature verification error")
	}
}
