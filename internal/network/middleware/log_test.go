package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denmor86/landed-cost/internal/logger"
)

func TestLogHandle(t *testing.T) {
	if err := logger.Initialize("debug"); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	testCases := []struct {
		Name           string
		Handler        http.HandlerFunc
		ExpectedStatus int
		ExpectedBody   string
	}{
		{
			Name: "Success. Status and body pass through #1",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("queued"))
			},
			ExpectedStatus: http.StatusAccepted,
			ExpectedBody:   "queued",
		},
		{
			Name:           "Success. Implicit 200 #2",
			Handler:        func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) },
			ExpectedStatus: http.StatusOK,
			ExpectedBody:   "ok",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			LogHandle(tc.Handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/classification/rules", nil))
			if rec.Code != tc.ExpectedStatus || rec.Body.String() != tc.ExpectedBody {
				t.Errorf("Expected %d %q, got: %d %q", tc.ExpectedStatus, tc.ExpectedBody, rec.Code, rec.Body.String())
			}
		})
	}
}
