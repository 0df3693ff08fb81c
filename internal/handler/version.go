package handler

import (
	"net/http"

	"recipehub-admin-api/internal/repository"
	"recipehub-admin-api/internal/service"
	"recipehub-admin-api/pkg/apierror"
	"recipehub-admin-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// VersionHandler serves version listings, store sets and compare results.
type VersionHandler struct {
	versionService *service.VersionService
	catalog        repository.CatalogRepository
}

// NewVersionHandler creates a new version handler.
func NewVersionHandler(versionService *service.VersionService, catalog repository.CatalogRepository) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
		catalog:        catalog,
	}
}

// List handles GET /api/v1/versions.
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	versions, err := h.catalog.Versions(r.Context())
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, versions)
}

// Stores handles GET /api/v1/versions/{version_id}/stores.
func (h *VersionHandler) Stores(w http.ResponseWriter, r *http.Request) {
	versionID := chi.URLParam(r, "version_id")
	if versionID == "" {
		response.Error(w, apierror.BadRequest("version_id is required"))
		return
	}

	stores, err := h.catalog.StoresForVersion(r.Context(), versionID)
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, map[string]interface{}{
		"version_id":  versionID,
		"store_count": len(stores),
		"stores":      stores,
	})
}

// Compare handles GET /api/v1/versions/compare?current=v5&target=v6.
func (h *VersionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("current")
	target := r.URL.Query().Get("target")
	if current == "" || target == "" {
		response.Error(w, apierror.BadRequest("current and target query parameters are required"))
		return
	}

	diff, err := h.versionService.Compare(r.Context(), current, target)
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, diff)
}
