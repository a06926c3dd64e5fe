package handlers

import (
	"errors"
	"net/http"

	"github.com/denmor86/landed-cost/internal/helpers"
	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/denmor86/landed-cost/internal/services"
	"github.com/denmor86/landed-cost/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Calculator - синхронные расчёты карго и белой логистики
type Calculator interface {
	Cargo(req models.CargoRequest) (models.CargoResult, error)
	White(req models.WhiteRequest) (models.WhiteLogisticsResult, error)
}

// EnqueueCalculationHandler - постановка задачи расчёта в очередь
func EnqueueCalculationHandler(s services.JobsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := helpers.GetClientID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		var req models.CalculationRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		job, created, err := s.Enqueue(r.Context(), clientID, req)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrAlreadyExists):
				http.Error(w, "Job id already used by another client", http.StatusConflict)
			default:
				logger.Error("Failed to enqueue job", "error", err)
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusAccepted
		}
		WriteJSON(w, status, job)
	})
}

// GetCalculationHandler - статус и результат задачи
func GetCalculationHandler(s services.JobsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := helpers.GetClientID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		job, err := s.GetJob(r.Context(), clientID, chi.URLParam(r, "id"))
		if err != nil {
			writeJobError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, job)
	})
}

// CancelCalculationHandler - отмена задачи
func CancelCalculationHandler(s services.JobsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := helpers.GetClientID(r.Context())
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		job, err := s.Cancel(r.Context(), clientID, chi.URLParam(r, "id"))
		if err != nil {
			writeJobError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, job)
	})
}

func writeJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrJobNotFound):
		http.Error(w, "Job not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrJobFinished):
		http.Error(w, "Job already finished", http.StatusConflict)
	default:
		logger.Error("Failed to access job", "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}

// CargoHandler - синхронный расчёт карго
func CargoHandler(c Calculator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.CargoRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		result, err := c.Cargo(req)
		WriteOutcome(w, result, err)
	})
}

// WhiteHandler - синхронный расчёт белой логистики
func WhiteHandler(c Calculator) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.WhiteRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		result, err := c.White(req)
		WriteOutcome(w, result, err)
	})
}
