package http

import (
	"net/http"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http/handler"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	prescriptionHandler    *handler.PrescriptionHandler
	medicHandler           *handler.MedicHandler
	medicalProviderHandler *handler.MedicalProviderHandler
	patientHandler         *handler.PatientHandler
	referenceHandler       *handler.ReferenceHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
}

func NewRouter(
	prescriptionHandler *handler.PrescriptionHandler,
	medicHandler *handler.MedicHandler,
	medicalProviderHandler *handler.MedicalProviderHandler,
	patientHandler *handler.PatientHandler,
	referenceHandler *handler.ReferenceHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		prescriptionHandler:    prescriptionHandler,
		medicHandler:           medicHandler,
		medicalProviderHandler: medicalProviderHandler,
		patientHandler:         patientHandler,
		referenceHandler:       referenceHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public: provider login issues the bearer token everything else needs
	api.HandleFunc("/medical-providers/login", r.medicalProviderHandler.Login).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Prescriptions. The fixed list-variant paths must be registered
	// before the {id} route so mux does not swallow them as IDs.
	prescriptions := protected.PathPrefix("/prescriptions").Subrouter()
	prescriptions.HandleFunc("/get-prescriptions-by-filters", r.prescriptionHandler.GetByFilters).Methods(http.MethodGet)
	prescriptions.HandleFunc("/by-medical-provider-paginated", r.prescriptionHandler.ByMedicalProviderPaginated).Methods(http.MethodGet)
	prescriptions.HandleFunc("/by-medic-and-medical-provider-paginated", r.prescriptionHandler.ByMedicAndProviderPaginated).Methods(http.MethodGet)
	prescriptions.HandleFunc("/by-patient-and-medical-provider-paginated", r.prescriptionHandler.ByPatientAndProviderPaginated).Methods(http.MethodGet)
	prescriptions.HandleFunc("/by-medical-provider-and-date-range", r.prescriptionHandler.ByProviderAndDateRange).Methods(http.MethodGet)
	prescriptions.HandleFunc("/by-medic-and-date-range", r.prescriptionHandler.ByMedicAndDateRange).Methods(http.MethodGet)
	prescriptions.HandleFunc("/active-by-medical-provider", r.prescriptionHandler.ActiveByProvider).Methods(http.MethodGet)
	prescriptions.HandleFunc("/count-by-medical-provider", r.prescriptionHandler.CountByProvider).Methods(http.MethodGet)
	prescriptions.HandleFunc("/download/excel", r.prescriptionHandler.DownloadExcel).Methods(http.MethodGet)
	prescriptions.HandleFunc("", r.prescriptionHandler.Create).Methods(http.MethodPost)
	prescriptions.HandleFunc("", r.prescriptionHandler.GetAll).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.GetByID).Methods(http.MethodGet)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	prescriptions.HandleFunc("/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)

	// Medics
	medics := protected.PathPrefix("/medics").Subrouter()
	medics.HandleFunc("/pageable", r.medicHandler.GetPaginated).Methods(http.MethodGet)
	medics.HandleFunc("/search", r.medicHandler.Search).Methods(http.MethodGet)
	medics.HandleFunc("/by-medical-provider/{id}", r.medicHandler.GetByMedicalProvider).Methods(http.MethodGet)
	medics.HandleFunc("", r.medicHandler.Create).Methods(http.MethodPost)
	medics.HandleFunc("", r.medicHandler.GetAll).Methods(http.MethodGet)
	medics.HandleFunc("/{id}", r.medicHandler.GetByID).Methods(http.MethodGet)
	medics.HandleFunc("/{id}", r.medicHandler.Update).Methods(http.MethodPut)
	medics.HandleFunc("/{id}", r.medicHandler.Delete).Methods(http.MethodDelete)

	// Medical providers
	providers := protected.PathPrefix("/medical-providers").Subrouter()
	providers.HandleFunc("", r.medicalProviderHandler.Create).Methods(http.MethodPost)
	providers.HandleFunc("", r.medicalProviderHandler.GetAll).Methods(http.MethodGet)
	providers.HandleFunc("/{id}", r.medicalProviderHandler.GetByID).Methods(http.MethodGet)
	providers.HandleFunc("/{id}", r.medicalProviderHandler.Update).Methods(http.MethodPut)
	providers.HandleFunc("/{id}", r.medicalProviderHandler.Delete).Methods(http.MethodDelete)

	// Patients
	patients := protected.PathPrefix("/patients").Subrouter()
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.GetAll).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Reference data
	countries := protected.PathPrefix("/countries").Subrouter()
	countries.HandleFunc("", r.referenceHandler.CreateCountry).Methods(http.MethodPost)
	countries.HandleFunc("", r.referenceHandler.GetAllCountries).Methods(http.MethodGet)
	countries.HandleFunc("/{id}", r.referenceHandler.GetCountry).Methods(http.MethodGet)
	countries.HandleFunc("/{id}", r.referenceHandler.UpdateCountry).Methods(http.MethodPut)
	countries.HandleFunc("/{id}", r.referenceHandler.DeleteCountry).Methods(http.MethodDelete)

	localities := protected.PathPrefix("/localities").Subrouter()
	localities.HandleFunc("", r.referenceHandler.CreateLocality).Methods(http.MethodPost)
	localities.HandleFunc("", r.referenceHandler.GetAllLocalities).Methods(http.MethodGet)
	localities.HandleFunc("/{id}", r.referenceHandler.GetLocality).Methods(http.MethodGet)
	localities.HandleFunc("/{id}", r.referenceHandler.UpdateLocality).Methods(http.MethodPut)
	localities.HandleFunc("/{id}", r.referenceHandler.DeleteLocality).Methods(http.MethodDelete)

	templates := protected.PathPrefix("/notification-templates").Subrouter()
	templates.HandleFunc("", r.referenceHandler.CreateNotificationTemplate).Methods(http.MethodPost)
	templates.HandleFunc("", r.referenceHandler.GetAllNotificationTemplates).Methods(http.MethodGet)
	templates.HandleFunc("/{id}", r.referenceHandler.GetNotificationTemplate).Methods(http.MethodGet)
	templates.HandleFunc("/{id}", r.referenceHandler.UpdateNotificationTemplate).Methods(http.MethodPut)
	templates.HandleFunc("/{id}", r.referenceHandler.DeleteNotificationTemplate).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
