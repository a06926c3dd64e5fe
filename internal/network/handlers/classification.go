package handlers

import (
	"net/http"

	"github.com/denmor86/landed-cost/internal/classification"
	"github.com/denmor86/landed-cost/internal/models"
)

// RuleChecker - активный набор правил красной зоны
type RuleChecker interface {
	Current() *classification.RuleSet
	Check(raw string) models.ClassificationDecision
}

type rulesResponse struct {
	Version string `json:"version"`
	Rules   int    `json:"rules"`
}

// CheckClassificationHandler - проверка кода ТН ВЭД по правилам
func CheckClassificationHandler(rules RuleChecker) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ClassificationRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		WriteJSON(w, http.StatusOK, rules.Check(req.Code))
	})
}

// RulesHandler - версия и размер активного набора правил
func RulesHandler(rules RuleChecker) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		set := rules.Current()
		WriteJSON(w, http.StatusOK, rulesResponse{Version: set.Version, Rules: len(set.Rules)})
	})
}
