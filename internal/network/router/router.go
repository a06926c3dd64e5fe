package router

import (
	"github.com/denmor86/landed-cost/internal/network/handlers"
	"github.com/denmor86/landed-cost/internal/network/middleware"
	"github.com/denmor86/landed-cost/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Identity   *services.Identity
	Jobs       services.JobsService
	Calculator handlers.Calculator
	Rules      handlers.RuleChecker
}

func NewRouter(identity *services.Identity, jobs services.JobsService, calculator handlers.Calculator, rules handlers.RuleChecker) *Router {
	return &Router{
		Identity:   identity,
		Jobs:       jobs,
		Calculator: calculator,
		Rules:      rules,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Use(jwtauth.Verifier(ja))
		r.Use(jwtauth.Authenticator(ja))
		r.Route("/calculations", func(r chi.Router) {
			r.Post("/", handlers.EnqueueCalculationHandler(router.Jobs))
			r.Post("/cargo", handlers.CargoHandler(router.Calculator))
			r.Post("/white", handlers.WhiteHandler(router.Calculator))
			r.Get("/{id}", handlers.GetCalculationHandler(router.Jobs))
			r.Delete("/{id}", handlers.CancelCalculationHandler(router.Jobs))
		})
		r.Route("/classification", func(r chi.Router) {
			r.Post("/check", handlers.CheckClassificationHandler(router.Rules))
			r.Get("/rules", handlers.RulesHandler(router.Rules))
		})
	})
	return r
}
