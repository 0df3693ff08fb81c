package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"recipehub-admin-api/internal/model"
	"recipehub-admin-api/internal/query"
	"recipehub-admin-api/internal/repository"
	"recipehub-admin-api/internal/workflow"
)

// RequestService handles the request lifecycle: draft validation,
// submission, workflow transitions and list queries.
type RequestService struct {
	requests repository.RequestRepository
	catalog  repository.CatalogRepository
}

// NewRequestService creates a new request service.
// Returns nil if either dependency is nil (both are required).
func NewRequestService(
	requests repository.RequestRepository,
	catalog repository.CatalogRepository,
) *RequestService {
	if requests == nil || catalog == nil {
		return nil
	}
	return &RequestService{
		requests: requests,
		catalog:  catalog,
	}
}

// Submit validates the draft, assigns an identifier and inserts the request
// in its type's initial workflow state. Validation failures create nothing:
// there is no partial request.
func (s *RequestService) Submit(ctx context.Context, draft model.RequestDraft) (*model.Request, error) {
	if err := s.validate(ctx, draft); err != nil {
		return nil, err
	}

	initial, err := workflow.Initial(draft.Type)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &model.Request{
		Type:           draft.Type,
		Description:    draft.Description,
		RequestedBy:    draft.RequestedBy,
		CreatedAt:      now,
		State:          initial,
		StateChangedAt: now,
		Remarks:        draft.Remarks,
		Payload:        draft.Payload,
	}

	if p, ok := draft.Payload.(model.VersionActionPayload); ok {
		req.TargetVersion = p.TargetVersion
		stores, err := s.catalog.StoresForVersion(ctx, p.TargetVersion)
		if err != nil {
			// Validation already proved the version exists, so this only
			// fires on an unexpected catalog failure.
			log.Printf("[RequestService] Warning: store count unavailable for version %s: %v", p.TargetVersion, err)
		} else {
			req.StoreCount = len(stores)
		}
	}

	stored, err := s.requests.Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit request: %w", err)
	}

	log.Printf("[RequestService] Submitted %s (%s) by %s, state=%s",
		stored.ID, stored.Type, stored.RequestedBy, stored.State)
	return stored, nil
}

// Get returns the request with the given identifier.
func (s *RequestService) Get(ctx context.Context, id string) (*model.Request, error) {
	return s.requests.Get(ctx, id)
}

// Advance moves a request to next, which must be the immediate successor of
// its current state for its type.
func (s *RequestService) Advance(ctx context.Context, id string, next model.State) (*model.Request, error) {
	updated, err := s.requests.Transition(ctx, id, func(req *model.Request) error {
		return workflow.Advance(req, next)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[RequestService] Advanced %s to %s", id, updated.State)
	return updated, nil
}

// Reject moves a request to REJECTED from any non-terminal state.
func (s *RequestService) Reject(ctx context.Context, id, reason string) (*model.Request, error) {
	updated, err := s.requests.Transition(ctx, id, func(req *model.Request) error {
		return workflow.Reject(req, reason)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[RequestService] Rejected %s", id)
	return updated, nil
}

// ListParams selects, orders and truncates the request list.
type ListParams struct {
	PendingOnly bool
	Team        model.Team
	Search      string
	SortField   query.SortField
	SortAsc     bool
	Limit       int
	ShowAll     bool
}

// List returns the requests matching params. All filtering and sorting is
// in-memory over the full collection; the stored table is never mutated.
func (s *RequestService) List(ctx context.Context, params ListParams) ([]model.Request, error) {
	reqs, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	if params.Team != "" {
		reqs = query.PendingOn(reqs, params.Team)
	} else if params.PendingOnly {
		reqs = query.Pending(reqs)
	}
	reqs = query.MatchText(reqs, params.Search)
	if params.SortField != "" {
		reqs = query.SortBy(reqs, query.Sort{Field: params.SortField, Desc: !params.SortAsc})
	}
	return query.Truncate(reqs, params.Limit, params.ShowAll), nil
}

// CountByState returns the number of requests per workflow state.
func (s *RequestService) CountByState(ctx context.Context) (map[model.State]int, error) {
	return s.requests.CountByState(ctx)
}

// validate checks the draft against the catalog. Every failing field is
// reported, not just the first.
func (s *RequestService) validate(ctx context.Context, draft model.RequestDraft) error {
	verr := &ValidationError{}

	if !draft.Type.IsValid() {
		verr.add("request_type", fmt.Sprintf("unknown request type %q", draft.Type))
		return verr
	}
	if draft.Description == "" {
		verr.add("description", "description is required")
	}
	if draft.Payload == nil {
		verr.add("payload", "payload is required")
		return verr.errOrNil()
	}

	switch p := draft.Payload.(type) {
	case model.RecipeRowsPayload:
		s.validateRecipeRows(ctx, verr, p)
	case model.InventoryRowsPayload:
		s.validateInventoryRows(ctx, verr, draft.Type, p)
	case model.VersionActionPayload:
		s.validateVersionAction(ctx, verr, p)
	case model.SizeCodePayload:
		s.validateSizeCode(ctx, verr, p)
	case model.ToppingRowsPayload:
		s.validateToppingRows(ctx, verr, p)
	default:
		verr.add("payload", fmt.Sprintf("payload does not match request type %s", draft.Type))
	}

	return verr.errOrNil()
}

func (s *RequestService) validateRecipeRows(ctx context.Context, verr *ValidationError, p model.RecipeRowsPayload) {
	if len(p.Rows) == 0 {
		verr.add("payload.rows", "at least one recipe row is required")
		return
	}
	for i, row := range p.Rows {
		field := fmt.Sprintf("payload.rows[%d]", i)
		if row.ProductCode == "" {
			verr.add(field+".product_code", "product code is required")
		}
		if row.Grammage <= 0 {
			verr.add(field+".grammage", "grammage must be positive")
		}
		if _, err := s.catalog.FindInventoryItem(ctx, row.InventoryCode); err != nil {
			verr.add(field+".inventory_code", fmt.Sprintf("inventory code %q does not resolve", row.InventoryCode))
		}
		if _, err := s.catalog.FindSizeCode(ctx, row.SizeCode); err != nil {
			verr.add(field+".size_code", fmt.Sprintf("size code %q does not resolve", row.SizeCode))
		}
	}
}

func (s *RequestService) validateInventoryRows(ctx context.Context, verr *ValidationError, t model.RequestType, p model.InventoryRowsPayload) {
	if len(p.Rows) == 0 {
		verr.add("payload.rows", "at least one inventory row is required")
		return
	}
	for i, row := range p.Rows {
		field := fmt.Sprintf("payload.rows[%d]", i)
		if row.Code == "" {
			verr.add(field+".code", "item code is required")
			continue
		}
		if row.Description == "" {
			verr.add(field+".description", "item description is required")
		}
		_, err := s.catalog.FindInventoryItem(ctx, row.Code)
		switch t {
		case model.TypeUpdateInventory:
			if err != nil {
				verr.add(field+".code", fmt.Sprintf("inventory code %q does not resolve", row.Code))
			}
		case model.TypeNewInventory:
			if err == nil {
				verr.add(field+".code", fmt.Sprintf("inventory code %q already exists", row.Code))
			}
		}
	}
}

func (s *RequestService) validateVersionAction(ctx context.Context, verr *ValidationError, p model.VersionActionPayload) {
	if p.TargetVersion == "" {
		verr.add("payload.target_version", "target version is required")
		return
	}
	ok, err := s.catalog.HasVersion(ctx, p.TargetVersion)
	if err != nil || !ok {
		verr.add("payload.target_version", fmt.Sprintf("version %q does not resolve", p.TargetVersion))
	}
}

func (s *RequestService) validateSizeCode(ctx context.Context, verr *ValidationError, p model.SizeCodePayload) {
	if p.Code == "" {
		verr.add("payload.code", "size code is required")
		return
	}
	if p.Description == "" {
		verr.add("payload.description", "size code description is required")
	}
	if _, err := s.catalog.FindSizeCode(ctx, p.Code); err == nil {
		verr.add("payload.code", fmt.Sprintf("size code %q already exists", p.Code))
	}
}

func (s *RequestService) validateToppingRows(ctx context.Context, verr *ValidationError, p model.ToppingRowsPayload) {
	if len(p.Rows) == 0 {
		verr.add("payload.rows", "at least one topping row is required")
		return
	}
	for i, row := range p.Rows {
		field := fmt.Sprintf("payload.rows[%d]", i)
		if row.Code == "" {
			verr.add(field+".code", "topping code is required")
		}
		if row.Description == "" {
			verr.add(field+".description", "topping description is required")
		}
		if row.Grammage <= 0 {
			verr.add(field+".grammage", "grammage must be positive")
		}
	}
}

// IsNotFound reports whether err is a missing-record error from the
// repository layer.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
