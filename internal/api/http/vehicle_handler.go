package http

import (
	"net/http"
	"strconv"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/service"

	"github.com/gorilla/mux"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
	imageSvc   service.ImageStorageService
}

func NewVehicleHandler(vehicleSvc service.VehicleService, imageSvc service.ImageStorageService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, imageSvc: imageSvc}
}

// List serves the vehicle catalog; ?status=AVAILABLE narrows to one status
// tab.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.VehicleStatus(r.URL.Query().Get("status"))
	vehicles, err := h.vehicleSvc.ListVehicles(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"vehicles": vehicles})
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, err)
		return
	}
	if err := h.vehicleSvc.AddVehicle(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var v domain.Vehicle
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, err)
		return
	}
	v.ID = id
	if err := h.vehicleSvc.UpdateVehicle(r.Context(), &v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type changeStatusRequest struct {
	Status domain.VehicleStatus `json:"status"`
}

func (h *VehicleHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.vehicleSvc.ChangeStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

func (h *VehicleHandler) GetImageUploadURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req uploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	uploadURL, key, err := h.imageSvc.GetUploadURL(r.Context(), id, req.Filename, req.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"upload_url": uploadURL, "key": key})
}

type confirmImageRequest struct {
	Key string `json:"key"`
}

func (h *VehicleHandler) ConfirmImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req confirmImageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.imageSvc.ConfirmVehicleImage(r.Context(), id, req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// pathID parses the numeric {id} route variable.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid %s %q", name, raw)
	}
	return int32(id), nil
}
