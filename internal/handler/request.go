package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"recipehub-admin-api/internal/middleware"
	"recipehub-admin-api/internal/model"
	"recipehub-admin-api/internal/query"
	"recipehub-admin-api/internal/service"
	"recipehub-admin-api/pkg/apierror"
	"recipehub-admin-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// RequestHandler handles change-request HTTP requests.
type RequestHandler struct {
	requestService *service.RequestService
	defaultLimit   int
}

// NewRequestHandler creates a new request handler. defaultLimit is the list
// length served when the caller asks for neither a limit nor "all".
func NewRequestHandler(requestService *service.RequestService, defaultLimit int) *RequestHandler {
	if defaultLimit <= 0 {
		defaultLimit = 5
	}
	return &RequestHandler{
		requestService: requestService,
		defaultLimit:   defaultLimit,
	}
}

// submitBody is the wire shape of a draft submission. The payload stays raw
// until the request type is known.
type submitBody struct {
	Type        model.RequestType `json:"request_type"`
	Description string            `json:"description"`
	RequestedBy string            `json:"requested_by"`
	Remarks     string            `json:"remarks"`
	Payload     json.RawMessage   `json:"payload"`
}

// Submit handles POST /api/v1/requests. The optional source and toast query
// parameters are echoed back for the presentation layer's post-submit
// routing; they carry no business meaning and never reach the service.
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()

	payload, err := model.DecodePayload(body.Type, body.Payload)
	if err != nil {
		response.Error(w, apierror.BadRequest(err.Error()))
		return
	}

	requestedBy := body.RequestedBy
	if requestedBy == "" {
		requestedBy = middleware.GetActor(r.Context())
	}

	draft := model.RequestDraft{
		Type:        body.Type,
		Description: body.Description,
		RequestedBy: requestedBy,
		Remarks:     body.Remarks,
		Payload:     payload,
	}

	req, err := h.requestService.Submit(r.Context(), draft)
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}

	response.Created(w, map[string]interface{}{
		"request": req,
		"source":  r.URL.Query().Get("source"),
		"toast":   r.URL.Query().Get("toast") == "true",
	})
}

// List handles GET /api/v1/requests.
// Query parameters: pending, team, q, sort, dir, limit, all.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var sortField query.SortField
	switch q.Get("sort") {
	case "":
	case string(query.SortByID):
		sortField = query.SortByID
	case string(query.SortByCreated):
		sortField = query.SortByCreated
	case string(query.SortByGoLive):
		sortField = query.SortByGoLive
	default:
		response.Error(w, apierror.BadRequest("unknown sort field: "+q.Get("sort")))
		return
	}

	limit := h.defaultLimit
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, apierror.BadRequest("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	// Fetch without truncation so the meta block can report the full match
	// count next to the truncated page.
	all, err := h.requestService.List(r.Context(), service.ListParams{
		PendingOnly: q.Get("pending") == "true",
		Team:        model.Team(q.Get("team")),
		Search:      q.Get("q"),
		SortField:   sortField,
		SortAsc:     strings.EqualFold(q.Get("dir"), "asc"),
		ShowAll:     true,
	})
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}

	reqs := query.Truncate(all, limit, q.Get("all") == "true")
	response.JSONWithMeta(w, http.StatusOK, reqs, len(reqs), len(all))
}

// Get handles GET /api/v1/requests/{request_id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "request_id")
	if id == "" {
		response.Error(w, apierror.BadRequest("request_id is required"))
		return
	}

	req, err := h.requestService.Get(r.Context(), id)
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, req)
}

// Advance handles POST /api/v1/requests/{request_id}/advance.
func (h *RequestHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "request_id")
	if id == "" {
		response.Error(w, apierror.BadRequest("request_id is required"))
		return
	}

	var body struct {
		NextState model.State `json:"next_state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()
	if body.NextState == "" {
		response.Error(w, apierror.BadRequest("next_state is required"))
		return
	}

	req, err := h.requestService.Advance(r.Context(), id, body.NextState)
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, req)
}

// Reject handles POST /api/v1/requests/{request_id}/reject.
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "request_id")
	if id == "" {
		response.Error(w, apierror.BadRequest("request_id is required"))
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return
	}
	defer r.Body.Close()

	req, err := h.requestService.Reject(r.Context(), id, body.Reason)
	if err != nil {
		response.Error(w, toAPIError(err))
		return
	}
	response.OK(w, req)
}
