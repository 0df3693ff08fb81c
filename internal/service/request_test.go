package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub-admin-api/internal/model"
	"recipehub-admin-api/internal/query"
	"recipehub-admin-api/internal/repository"
	"recipehub-admin-api/internal/workflow"
)

func newService(t *testing.T) *RequestService {
	t.Helper()
	svc := NewRequestService(repository.NewMemoryRequestRepository(), repository.NewFixtureCatalog(1))
	require.NotNil(t, svc)
	return svc
}

func validRecipeDraft() model.RequestDraft {
	return model.RequestDraft{
		Type:        model.TypeNewRecipe,
		Description: "Add smoky paneer pizza",
		RequestedBy: "asha",
		Payload: model.RecipeRowsPayload{
			Rows: []model.RecipeRowEntry{
				{ProductCode: "PZ010", InventoryCode: "ITM007", SizeCode: "MED", Grammage: 60},
				{ProductCode: "PZ010", InventoryCode: "ITM001", SizeCode: "MED", Grammage: 75},
			},
		},
	}
}

func TestSubmitAssignsIDAndInitialState(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, validRecipeDraft())
	require.NoError(t, err)

	assert.Equal(t, "REQ_001", req.ID)
	assert.Equal(t, model.StatePendingChef, req.State)
	assert.False(t, req.CreatedAt.IsZero())
	assert.Nil(t, req.GoLiveAt)
}

func TestSubmitValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		draft     model.RequestDraft
		wantField string
	}{
		{
			name: "missing description",
			draft: model.RequestDraft{
				Type:    model.TypeNewRecipe,
				Payload: validRecipeDraft().Payload,
			},
			wantField: "description",
		},
		{
			name: "missing payload",
			draft: model.RequestDraft{
				Type:        model.TypeNewRecipe,
				Description: "something",
			},
			wantField: "payload",
		},
		{
			name: "unresolvable inventory code",
			draft: model.RequestDraft{
				Type:        model.TypeNewRecipe,
				Description: "bad ingredient",
				Payload: model.RecipeRowsPayload{
					Rows: []model.RecipeRowEntry{
						{ProductCode: "PZ010", InventoryCode: "ITM999", SizeCode: "MED", Grammage: 10},
					},
				},
			},
			wantField: "payload.rows[0].inventory_code",
		},
		{
			name: "unresolvable size code",
			draft: model.RequestDraft{
				Type:        model.TypeNewRecipe,
				Description: "bad size",
				Payload: model.RecipeRowsPayload{
					Rows: []model.RecipeRowEntry{
						{ProductCode: "PZ010", InventoryCode: "ITM001", SizeCode: "XXL", Grammage: 10},
					},
				},
			},
			wantField: "payload.rows[0].size_code",
		},
		{
			name: "rollback to unknown version",
			draft: model.RequestDraft{
				Type:        model.TypeVersionRollback,
				Description: "rollback",
				Payload:     model.VersionActionPayload{TargetVersion: "v99"},
			},
			wantField: "payload.target_version",
		},
		{
			name: "new size code collides with catalog",
			draft: model.RequestDraft{
				Type:        model.TypeNewSizeCode,
				Description: "add medium again",
				Payload:     model.SizeCodePayload{Code: "MED", Description: "Medium"},
			},
			wantField: "payload.code",
		},
		{
			name: "update of unknown inventory item",
			draft: model.RequestDraft{
				Type:        model.TypeUpdateInventory,
				Description: "tweak",
				Payload: model.InventoryRowsPayload{
					Rows: []model.InventoryRowEntry{
						{Code: "ITM999", Description: "ghost item"},
					},
				},
			},
			wantField: "payload.rows[0].code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tt.draft)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.wantField)

			// No partial request may exist after a failed submission.
			reqs, listErr := svc.List(ctx, ListParams{ShowAll: true})
			require.NoError(t, listErr)
			assert.Empty(t, reqs)
		})
	}
}

func TestSubmitVersionActionRecordsStoreCount(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, model.RequestDraft{
		Type:        model.TypeVersionExtend,
		Description: "extend v6 to the new stores",
		Payload:     model.VersionActionPayload{TargetVersion: "v6"},
	})
	require.NoError(t, err)

	assert.Equal(t, "v6", req.TargetVersion)
	assert.Greater(t, req.StoreCount, 0)
	assert.Equal(t, model.StatePendingCategory, req.State)
}

// storesDownCatalog fails every store lookup while serving everything else
// from the fixture.
type storesDownCatalog struct {
	repository.CatalogRepository
}

func (c storesDownCatalog) StoresForVersion(ctx context.Context, versionID string) ([]model.Store, error) {
	return nil, errors.New("store backend unavailable")
}

func TestSubmitSurvivesStoreLookupFailure(t *testing.T) {
	catalog := storesDownCatalog{repository.NewFixtureCatalog(1)}
	svc := NewRequestService(repository.NewMemoryRequestRepository(), catalog)
	require.NotNil(t, svc)

	req, err := svc.Submit(context.Background(), model.RequestDraft{
		Type:        model.TypeVersionExtend,
		Description: "extend v6",
		Payload:     model.VersionActionPayload{TargetVersion: "v6"},
	})
	require.NoError(t, err, "a store-count failure must not block submission")
	assert.Equal(t, "v6", req.TargetVersion)
	assert.Zero(t, req.StoreCount)
}

func TestAdvanceAndRejectThroughService(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, validRecipeDraft())
	require.NoError(t, err)

	advanced, err := svc.Advance(ctx, req.ID, model.StatePendingCategory)
	require.NoError(t, err)
	assert.Equal(t, model.StatePendingCategory, advanced.State)

	// Skipping ahead is refused and leaves the stored request unchanged.
	_, err = svc.Advance(ctx, req.ID, model.StateLive)
	require.ErrorIs(t, err, workflow.ErrInvalidTransition)

	got, err := svc.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatePendingCategory, got.State)

	rejected, err := svc.Reject(ctx, req.ID, "category veto")
	require.NoError(t, err)
	assert.Equal(t, model.StateRejected, rejected.State)
	assert.Equal(t, "category veto", rejected.RejectionReason)

	_, err = svc.Advance(ctx, req.ID, model.StatePendingSupplyChain)
	assert.ErrorIs(t, err, workflow.ErrTerminalState)
}

func TestAdvanceUnknownRequest(t *testing.T) {
	svc := newService(t)

	_, err := svc.Advance(context.Background(), "REQ_404", model.StatePendingCategory)
	assert.True(t, IsNotFound(err))
}

func TestListFiltersSortsAndTruncates(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Submit(ctx, validRecipeDraft())
		require.NoError(t, err)
	}
	_, err := svc.Reject(ctx, "REQ_002", "dropped")
	require.NoError(t, err)

	pending, err := svc.List(ctx, ListParams{PendingOnly: true, ShowAll: true})
	require.NoError(t, err)
	assert.Len(t, pending, 6)

	chef, err := svc.List(ctx, ListParams{Team: model.TeamChef, ShowAll: true})
	require.NoError(t, err)
	assert.Len(t, chef, 6)
	for _, r := range chef {
		assert.Equal(t, model.StatePendingChef, r.State)
	}

	firstFive, err := svc.List(ctx, ListParams{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, firstFive, 5)

	sorted, err := svc.List(ctx, ListParams{SortField: query.SortByID, ShowAll: true})
	require.NoError(t, err)
	require.Len(t, sorted, 7)
	assert.Equal(t, "REQ_007", sorted[0].ID, "sort defaults to descending")
}
