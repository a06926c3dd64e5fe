package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/landed-cost/internal/logger"
	"github.com/denmor86/landed-cost/internal/models"
	"github.com/denmor86/landed-cost/internal/validators"
)

// WriteJSON - ответ в формате JSON с кодом статуса
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
	}
}

// WriteOutcome - конверт {ok, errors, result}. Ошибки расчёта отдаются с кодом 422.
func WriteOutcome(w http.ResponseWriter, result interface{}, err error) {
	response := models.CalculationResponse{Outcome: models.OutcomeFromError(err)}
	if err != nil {
		WriteJSON(w, http.StatusUnprocessableEntity, response)
		return
	}
	response.Result = result
	WriteJSON(w, http.StatusOK, response)
}

// decodeRequest - разбор тела запроса и проверка тегов validate.
// Возвращает false, если ответ с ошибкой уже записан.
func decodeRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Error("Error to close body", "error", err)
		}
	}()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Warn("Invalid body", "uri", r.RequestURI, "error", err)
		http.Error(w, "Invalid body format", http.StatusBadRequest)
		return false
	}
	if err := validators.ValidateStruct(v); err != nil {
		logger.Warn("Invalid request", "uri", r.RequestURI, "error", err)
		WriteOutcome(w, nil, err)
		return false
	}
	return true
}
