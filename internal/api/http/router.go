package http

import (
	"net/http"

	"autorenta-backend/internal/storage"

	"github.com/gorilla/mux"
)

// RouterConfig bundles the handlers and middleware the router needs.
type RouterConfig struct {
	Auth         *AuthHandler
	Vehicles     *VehicleHandler
	Reservations *ReservationHandler
	Reports      *ReportHandler
	Middleware   *AuthMiddleware

	// MockStorage enables the local upload/download endpoints when the mock
	// storage backend is configured. Nil for Firebase deployments.
	MockStorage *storage.MockStorageService
}

// NewRouter assembles the API routes. Three tiers: public endpoints, customer
// endpoints behind access-token auth, and staff endpoints behind the role
// check on top of that.
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public.
	api.HandleFunc("/auth/register", cfg.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", cfg.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", cfg.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", cfg.Vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", cfg.Vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/branches", cfg.Reservations.ListBranches).Methods(http.MethodGet)

	// Customer endpoints require a valid access token.
	customer := api.NewRoute().Subrouter()
	customer.Use(cfg.Middleware.RequireAccess)
	customer.HandleFunc("/reservations", cfg.Reservations.Create).Methods(http.MethodPost)
	customer.HandleFunc("/reservations", cfg.Reservations.List).Methods(http.MethodGet)
	customer.HandleFunc("/reservations/{id:[0-9]+}", cfg.Reservations.Cancel).Methods(http.MethodDelete)

	// Staff endpoints additionally require the STAFF role.
	staff := api.NewRoute().Subrouter()
	staff.Use(cfg.Middleware.RequireAccess, RequireStaff)
	staff.HandleFunc("/vehicles", cfg.Vehicles.Create).Methods(http.MethodPost)
	staff.HandleFunc("/vehicles/{id:[0-9]+}", cfg.Vehicles.Update).Methods(http.MethodPut)
	staff.HandleFunc("/vehicles/{id:[0-9]+}/status", cfg.Vehicles.ChangeStatus).Methods(http.MethodPatch)
	staff.HandleFunc("/vehicles/{id:[0-9]+}/image/upload-url", cfg.Vehicles.GetImageUploadURL).Methods(http.MethodPost)
	staff.HandleFunc("/vehicles/{id:[0-9]+}/image/confirm", cfg.Vehicles.ConfirmImage).Methods(http.MethodPost)
	staff.HandleFunc("/reports/availability", cfg.Reports.Availability).Methods(http.MethodGet)
	staff.HandleFunc("/reports/top-brands", cfg.Reports.TopReservedBrands).Methods(http.MethodGet)

	if cfg.MockStorage != nil {
		upload := NewUploadHandler(cfg.MockStorage)
		r.HandleFunc("/api/v1/upload/{token}", upload.Upload).Methods(http.MethodPut)
		r.HandleFunc("/api/v1/download", upload.Download).Methods(http.MethodGet)
	}

	return r
}
