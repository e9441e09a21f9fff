package http

import (
	"net/http"

	"drug-insights-hub/internal/delivery/http/handler"
	"drug-insights-hub/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	affiliationHandler *handler.AffiliationHandler
	drugHandler        *handler.DrugHandler
	trialHandler       *handler.ClinicalTrialHandler
	publicationHandler *handler.PublicationHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	affiliationHandler *handler.AffiliationHandler,
	drugHandler *handler.DrugHandler,
	trialHandler *handler.ClinicalTrialHandler,
	publicationHandler *handler.PublicationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		affiliationHandler: affiliationHandler,
		drugHandler:        drugHandler,
		trialHandler:       trialHandler,
		publicationHandler: publicationHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/me", r.authHandler.DeleteAccount).Methods(http.MethodDelete)

	// Profile routes (protected)
	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(r.authMiddleware.Authenticate)
	profile.HandleFunc("", r.profileHandler.GetProfile).Methods(http.MethodGet)
	profile.HandleFunc("", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Public catalog: affiliation directory and research entity detail views.
	// Detail views carry optional authentication so the response can report
	// whether the viewer may modify the entity.
	public := api.NewRoute().Subrouter()
	public.Use(r.authMiddleware.OptionalAuthenticate)
	public.HandleFunc("/affiliations", r.affiliationHandler.GetAllAffiliations).Methods(http.MethodGet)
	public.HandleFunc("/affiliations/{id}", r.affiliationHandler.GetAffiliation).Methods(http.MethodGet)
	public.HandleFunc("/drugs/{id}", r.drugHandler.GetDrug).Methods(http.MethodGet)
	public.HandleFunc("/clinical-trials/{id}", r.trialHandler.GetClinicalTrial).Methods(http.MethodGet)
	public.HandleFunc("/publications/{id}", r.publicationHandler.GetPublication).Methods(http.MethodGet)

	// Mutations and affiliation-scoped listings (protected)
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/affiliations", r.affiliationHandler.CreateAffiliation).Methods(http.MethodPost)
	protected.HandleFunc("/affiliations/{id}", r.affiliationHandler.UpdateAffiliation).Methods(http.MethodPut)
	protected.HandleFunc("/affiliations/{id}", r.affiliationHandler.DeleteAffiliation).Methods(http.MethodDelete)

	protected.HandleFunc("/drugs", r.drugHandler.CreateDrug).Methods(http.MethodPost)
	protected.HandleFunc("/drugs/mine", r.drugHandler.GetMyDrugs).Methods(http.MethodGet)
	protected.HandleFunc("/drugs/{id}", r.drugHandler.UpdateDrug).Methods(http.MethodPut)
	protected.HandleFunc("/drugs/{id}", r.drugHandler.DeleteDrug).Methods(http.MethodDelete)

	protected.HandleFunc("/clinical-trials", r.trialHandler.CreateClinicalTrial).Methods(http.MethodPost)
	protected.HandleFunc("/clinical-trials/mine", r.trialHandler.GetMyClinicalTrials).Methods(http.MethodGet)
	protected.HandleFunc("/clinical-trials/{id}", r.trialHandler.UpdateClinicalTrial).Methods(http.MethodPut)
	protected.HandleFunc("/clinical-trials/{id}", r.trialHandler.DeleteClinicalTrial).Methods(http.MethodDelete)

	protected.HandleFunc("/publications", r.publicationHandler.CreatePublication).Methods(http.MethodPost)
	protected.HandleFunc("/publications/mine", r.publicationHandler.GetMyPublications).Methods(http.MethodGet)
	protected.HandleFunc("/publications/{id}", r.publicationHandler.UpdatePublication).Methods(http.MethodPut)
	protected.HandleFunc("/publications/{id}", r.publicationHandler.DeletePublication).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
