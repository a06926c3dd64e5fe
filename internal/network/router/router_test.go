package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/denmor86/landed-cost/internal/classification"
	"github.com/denmor86/landed-cost/internal/config"
	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/denmor86/landed-cost/internal/services"
	"github.com/denmor86/landed-cost/internal/services/mocks"
	"github.com/denmor86/landed-cost/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const jobID = "5b0c7d9e-8f1a-4c3b-9d2e-1a2b3c4d5e6f"

type testServer struct {
	server *httptest.Server
	jobs   *mocks.MockJobsService
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobsService(ctrl)
	set, err := classification.LoadRuleFile("")
	if err != nil {
		t.Fatalf("failed to load rules: %v", err)
	}
	identity := services.NewIdentity(cfg.Server.JWTSecret)
	token, err := identity.GenerateJWT("client")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	calculator := services.NewCalculatorService(cfg.Rates.ExchangeRates(), cfg.White.Fees())
	r := NewRouter(identity, jobs, calculator, classification.NewStaticSource(set))
	ts := &testServer{server: httptest.NewServer(r.HandleRouter()), jobs: jobs, token: token}
	t.Cleanup(ts.server.Close)
	return ts
}

func (ts *testServer) do(t *testing.T, method string, path string, body string, auth bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.server.URL+path, bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_Calculations(t *testing.T) {
	queued := &models.CalculationJob{ID: jobID, ClientID: "client", Status: models.StatusQueued}
	finished := &models.CalculationJob{ID: jobID, ClientID: "client", Status: models.StatusDone,
		Result: &models.JobResult{Outcome: models.Outcome{OK: true}}}

	testCases := []struct {
		Name           string
		Method         string
		Path           string
		Body           string
		NoAuth         bool
		Prepare        func(jobs *mocks.MockJobsService)
		ExpectedStatus int
	}{
		{
			Name:           "Error. Missing token #1",
			Method:         http.MethodGet,
			Path:           "/api/calculations/" + jobID,
			NoAuth:         true,
			Prepare:        func(jobs *mocks.MockJobsService) {},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:   "Success. Job queued #2",
			Method: http.MethodPost,
			Path:   "/api/calculations",
			Body:   `{"job_id":"` + jobID + `","article":"123456","path":"cargo"}`,
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().Enqueue(gomock.Any(), "client", gomock.Any()).Return(queued, true, nil)
			},
			ExpectedStatus: http.StatusAccepted,
		},
		{
			Name:   "Success. Resubmitted job returned as is #3",
			Method: http.MethodPost,
			Path:   "/api/calculations",
			Body:   `{"job_id":"` + jobID + `","article":"123456"}`,
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().Enqueue(gomock.Any(), "client", gomock.Any()).Return(finished, false, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "Error. Job id of another client #4",
			Method: http.MethodPost,
			Path:   "/api/calculations",
			Body:   `{"job_id":"` + jobID + `","article":"123456"}`,
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().Enqueue(gomock.Any(), "client", gomock.Any()).Return(nil, false, storage.ErrAlreadyExists)
			},
			ExpectedStatus: http.StatusConflict,
		},
		{
			Name:           "Error. Request without article and product #5",
			Method:         http.MethodPost,
			Path:           "/api/calculations",
			Body:           `{"path":"cargo"}`,
			Prepare:        func(jobs *mocks.MockJobsService) {},
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			Name:           "Error. Broken body #6",
			Method:         http.MethodPost,
			Path:           "/api/calculations",
			Body:           `{"article":`,
			Prepare:        func(jobs *mocks.MockJobsService) {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:   "Success. Job status #7",
			Method: http.MethodGet,
			Path:   "/api/calculations/" + jobID,
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().GetJob(gomock.Any(), "client", jobID).Return(finished, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "Error. Unknown job #8",
			Method: http.MethodGet,
			Path:   "/api/calculations/unknown",
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().GetJob(gomock.Any(), "client", "unknown").Return(nil, storage.ErrJobNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			Name:   "Success. Job cancelled #9",
			Method: http.MethodDelete,
			Path:   "/api/calculations/" + jobID,
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().Cancel(gomock.Any(), "client", jobID).Return(queued, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "Error. Finished job cannot be cancelled #10",
			Method: http.MethodDelete,
			Path:   "/api/calculations/" + jobID,
			Prepare: func(jobs *mocks.MockJobsService) {
				jobs.EXPECT().Cancel(gomock.Any(), "client", jobID).Return(nil, storage.ErrJobFinished)
			},
			ExpectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ts := newTestServer(t)
			tc.Prepare(ts.jobs)
			resp := ts.do(t, tc.Method, tc.Path, tc.Body, !tc.NoAuth)
			if resp.StatusCode != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got: %d", tc.ExpectedStatus, resp.StatusCode)
			}
		})
	}
}

type cargoResponse struct {
	OK     bool                `json:"ok"`
	Errors []models.FieldError `json:"errors"`
	Result models.CargoResult  `json:"result"`
}

func TestRouter_Cargo(t *testing.T) {
	testCases := []struct {
		Name           string
		Body           string
		ExpectedStatus int
		ExpectedOK     bool
		ExpectedTotal  string
		ExpectedField  string
	}{
		{
			Name:           "Success. Dense goods paid in USD #1",
			Body:           `{"weight_kg":500,"volume_m3":2,"goods_value":{"amount":10000,"currency":"USD"}}`,
			ExpectedStatus: http.StatusOK,
			ExpectedOK:     true,
			ExpectedTotal:  "2150",
		},
		{
			Name:           "Error. Zero volume #2",
			Body:           `{"weight_kg":500,"volume_m3":0,"goods_value":{"amount":10000,"currency":"USD"}}`,
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedField:  "volume_m3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ts := newTestServer(t)
			resp := ts.do(t, http.MethodPost, "/api/calculations/cargo", tc.Body, true)
			if resp.StatusCode != tc.ExpectedStatus {
				t.Fatalf("Expected status %d, got: %d", tc.ExpectedStatus, resp.StatusCode)
			}
			var body cargoResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.OK != tc.ExpectedOK {
				t.Errorf("Expected ok=%v, got: %v", tc.ExpectedOK, body.OK)
			}
			if tc.ExpectedTotal != "" && !body.Result.TotalUSD.Equal(decimal.RequireFromString(tc.ExpectedTotal)) {
				t.Errorf("Expected total %s, got: %s", tc.ExpectedTotal, body.Result.TotalUSD)
			}
			if tc.ExpectedField != "" && (len(body.Errors) == 0 || body.Errors[0].Field != tc.ExpectedField) {
				t.Errorf("Expected error on %s, got: %+v", tc.ExpectedField, body.Errors)
			}
		})
	}
}

func TestRouter_Classification(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/api/classification/check", `{"code":"9302 00 000 0"}`, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", resp.StatusCode)
	}
	var decision models.ClassificationDecision
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decision.Decision != models.DecisionBlock || decision.Code != "9302000000" || decision.RulesVersion != "2025.1" {
		t.Errorf("Unexpected decision: %+v", decision)
	}

	resp = ts.do(t, http.MethodGet, "/api/classification/rules", "", true)
	var rules struct {
		Version string `json:"version"`
		Rules   int    `json:"rules"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rules); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if rules.Version != "2025.1" || rules.Rules != 7 {
		t.Errorf("Unexpected rules info: %+v", rules)
	}
}
