package handler

import (
	"net/http"

	"recipehub-admin-api/internal/repository"
	"recipehub-admin-api/pkg/apierror"
	"recipehub-admin-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves read-only master-data lookups and searches.
type CatalogHandler struct {
	catalog repository.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// Find handles GET /api/v1/catalog/{kind}/{code}.
// kind is one of: recipes, inventory, sizecodes, toppings. For recipes the
// code is a product code and the result is that product's rows across all
// versions.
func (h *CatalogHandler) Find(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	code := chi.URLParam(r, "code")
	if code == "" {
		response.Error(w, apierror.BadRequest("code is required"))
		return
	}

	var (
		entity interface{}
		err    error
	)
	switch kind {
	case "recipes":
		entity, err = h.catalog.FindRecipeRows(r.Context(), code)
	case "inventory":
		entity, err = h.catalog.FindInventoryItem(r.Context(), code)
	case "sizecodes":
		entity, err = h.catalog.FindSizeCode(r.Context(), code)
	case "toppings":
		entity, err = h.catalog.FindExtraTopping(r.Context(), code)
	default:
		response.Error(w, apierror.BadRequest("unknown catalog kind: "+kind))
		return
	}
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, entity)
}

// Search handles GET /api/v1/catalog/{kind}?q=term.
// kind is one of: recipes, inventory, sizecodes, toppings. An empty term
// returns the full set; results are recomputed on every call.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	term := r.URL.Query().Get("q")

	var (
		entities interface{}
		err      error
	)
	switch kind {
	case "recipes":
		entities, err = h.catalog.SearchRecipeRows(r.Context(), term)
	case "inventory":
		entities, err = h.catalog.SearchInventoryItems(r.Context(), term)
	case "sizecodes":
		entities, err = h.catalog.SearchSizeCodes(r.Context(), term)
	case "toppings":
		entities, err = h.catalog.SearchExtraToppings(r.Context(), term)
	default:
		response.Error(w, apierror.BadRequest("unknown catalog kind: "+kind))
		return
	}
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, entities)
}
