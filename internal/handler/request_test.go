package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub-admin-api/internal/handler"
	"recipehub-admin-api/internal/repository"
	"recipehub-admin-api/internal/router"
	"recipehub-admin-api/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog := repository.NewFixtureCatalog(1)
	requestService := service.NewRequestService(repository.NewMemoryRequestRepository(), catalog)
	versionService := service.NewVersionService(catalog)
	require.NotNil(t, requestService)
	require.NotNil(t, versionService)

	mux := router.New(router.Config{
		Handler:        handler.New(),
		RequestHandler: handler.NewRequestHandler(requestService, 5),
		CatalogHandler: handler.NewCatalogHandler(catalog),
		VersionHandler: handler.NewVersionHandler(versionService, catalog),
		AdminHandler:   handler.NewAdminHandler(requestService, "fixture"),
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body map[string]interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func submitBody() map[string]interface{} {
	return map[string]interface{}{
		"request_type": "NEW_RECIPE",
		"description":  "Add smoky paneer pizza",
		"requested_by": "asha",
		"payload": map[string]interface{}{
			"rows": []map[string]interface{}{
				{"product_code": "PZ010", "inventory_code": "ITM007", "size_code": "MED", "grammage": 60},
			},
		},
	}
}

func TestSubmitRequest(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/requests?source=recipes&toast=true", submitBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	req := data["request"].(map[string]interface{})
	assert.Equal(t, "REQ_001", req["request_id"])
	assert.Equal(t, "PENDING_CHEF", req["state"])
	assert.Equal(t, "recipes", data["source"])
	assert.Equal(t, true, data["toast"])
}

func TestSubmitValidationError(t *testing.T) {
	srv := newTestServer(t)

	body := submitBody()
	body["description"] = ""
	resp := postJSON(t, srv.URL+"/api/v1/requests", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, false, out["success"])
	errObj := out["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	assert.NotEmpty(t, errObj["details"])
}

func TestSubmitMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/requests", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	errObj := out["error"].(map[string]interface{})
	assert.Equal(t, "BAD_REQUEST", errObj["code"])
}

func TestListRequestsMetaAndLimit(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 7; i++ {
		resp := postJSON(t, srv.URL+"/api/v1/requests", submitBody())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/v1/requests")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	meta := out["meta"].(map[string]interface{})
	assert.Equal(t, float64(5), meta["returned"])
	assert.Equal(t, float64(7), meta["total"])
	assert.Len(t, out["data"].([]interface{}), 5)

	resp, err = http.Get(srv.URL + "/api/v1/requests?all=true")
	require.NoError(t, err)
	out = decodeBody(t, resp)
	assert.Len(t, out["data"].([]interface{}), 7)

	resp, err = http.Get(srv.URL + "/api/v1/requests?sort=price")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAdvanceAndRejectOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/requests", submitBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	id := created["data"].(map[string]interface{})["request"].(map[string]interface{})["request_id"].(string)

	advanceURL := fmt.Sprintf("%s/api/v1/requests/%s/advance", srv.URL, id)

	resp = postJSON(t, advanceURL, map[string]interface{}{"next_state": "PENDING_CATEGORY"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "PENDING_CATEGORY", out["data"].(map[string]interface{})["state"])

	// A skip straight to LIVE is refused with a transition conflict.
	resp = postJSON(t, advanceURL, map[string]interface{}{"next_state": "LIVE"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	out = decodeBody(t, resp)
	assert.Equal(t, "INVALID_TRANSITION", out["error"].(map[string]interface{})["code"])

	resp = postJSON(t, fmt.Sprintf("%s/api/v1/requests/%s/reject", srv.URL, id),
		map[string]interface{}{"reason": "costing not approved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out = decodeBody(t, resp)
	rejected := out["data"].(map[string]interface{})
	assert.Equal(t, "REJECTED", rejected["state"])
	assert.Equal(t, "costing not approved", rejected["rejection_reason"])
}

func TestAdvanceUnknownRequestReturns404(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/requests/REQ_404/advance",
		map[string]interface{}{"next_state": "PENDING_CATEGORY"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", out["error"].(map[string]interface{})["code"])
}

func TestCatalogFindOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/catalog/recipes/PZ002")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	rows := out["data"].([]interface{})
	require.NotEmpty(t, rows)
	for _, raw := range rows {
		assert.Equal(t, "PZ002", raw.(map[string]interface{})["product_code"])
	}

	resp, err = http.Get(srv.URL + "/api/v1/catalog/recipes/PZ999")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out = decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", out["error"].(map[string]interface{})["code"])

	resp, err = http.Get(srv.URL + "/api/v1/catalog/bogus/PZ002")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCompareVersionsOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/versions/compare?current=v5&target=v6")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	data := out["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"PZ001"}, data["removed"])
	assert.Equal(t, []interface{}{"PZ004"}, data["added"])
	assert.Equal(t, float64(1), data["changed_count"])

	resp, err = http.Get(srv.URL + "/api/v1/versions/compare?current=v99&target=v6")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out = decodeBody(t, resp)
	assert.Equal(t, "UNKNOWN_VERSION", out["error"].(map[string]interface{})["code"])
}
