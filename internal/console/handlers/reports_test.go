package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xcauditing-console/internal/auth"
)

func TestDetailsRequiresMetric(t *testing.T) {
	h := newHarness(t)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet, "/api/v1/admin/weekly-report-summaries/r1/details", "", cookie)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Metric is required", decodeBody(t, w)["message"])
}

func TestDetailsReturnsRows(t *testing.T) {
	h := newHarness(t)
	h.backend.on("GET /weekly-report-summaries/r1/details", http.StatusOK,
		`{"items":[{"customer_id":"c1"},{"customer_id":"c2"}],"total_elements":2}`)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet,
		"/api/v1/admin/weekly-report-summaries/r1/details?metric=totalMaterialSend", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["data"], 2)
	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 2, meta["total_elements"])
}

func TestNotYetDueCohortEndToEnd(t *testing.T) {
	h := newHarness(t)
	firstWeekID := "rpt_FIRST_WEEK_e1_20260830"
	companionID := "rpt_WITHIN_48_HOURS_e1_20260830"

	h.backend.on("GET /weekly-report-summaries/"+firstWeekID, http.StatusOK,
		`{"id":"`+firstWeekID+`","eval_type":"FIRST_WEEK","total_customers":3}`)
	h.backend.on("GET /weekly-report-summaries/"+firstWeekID+"/details", http.StatusOK,
		`{"items":[{"customer_id":"c1"},{"customer_id":"c2"},{"customer_id":"c3"}],"total_elements":3}`)
	h.backend.on("GET /weekly-report-summaries/"+companionID+"/details", http.StatusOK,
		`{"items":[{"customer_id":"c1"}],"total_elements":1}`)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet,
		"/api/v1/admin/weekly-report-summaries/"+firstWeekID+"/not-yet-due", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["data"], 2)
}

func TestNotYetDueWithoutCompanionConflicts(t *testing.T) {
	h := newHarness(t)
	firstWeekID := "rpt_FIRST_WEEK_e1_20260830"

	h.backend.on("GET /weekly-report-summaries/"+firstWeekID, http.StatusOK,
		`{"id":"`+firstWeekID+`","eval_type":"FIRST_WEEK","total_customers":3}`)
	h.backend.on("GET /weekly-report-summaries/"+firstWeekID+"/details", http.StatusOK,
		`{"items":[{"customer_id":"c1"}],"total_elements":1}`)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet,
		"/api/v1/admin/weekly-report-summaries/"+firstWeekID+"/not-yet-due", "", cookie)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cohort_unavailable", decodeBody(t, w)["message"])
}

func TestNotYetDueRejectsOtherEvalTypes(t *testing.T) {
	h := newHarness(t)
	id := "rpt_SECOND_WEEK_e1_20260830"
	h.backend.on("GET /weekly-report-summaries/"+id, http.StatusOK,
		`{"id":"`+id+`","eval_type":"SECOND_WEEK"}`)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet,
		"/api/v1/admin/weekly-report-summaries/"+id+"/not-yet-due", "", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMissingOrderCheckEndToEnd(t *testing.T) {
	h := newHarness(t)
	h.backend.on("GET /weekly-report-summaries/r1/details", http.StatusOK,
		`{"items":[
			{"customer_id":"c1","has_order_check":1},
			{"customer_id":"c2"},
			{"customer_id":"c3","has_order_check":0}
		],"total_elements":3}`)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet,
		"/api/v1/admin/weekly-report-summaries/r1/missing-order-check", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"], 2)
}

func TestFleetSummaryRequiresPeriod(t *testing.T) {
	h := newHarness(t)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet, "/api/v1/admin/weekly-report-summaries/summary", "", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFleetSummaryAggregates(t *testing.T) {
	h := newHarness(t)
	h.backend.on("GET /weekly-report-summaries", http.StatusOK,
		`{"items":[
			{"id":"r1","total_customers":4,"total_introduce_completed":2},
			{"id":"r2","total_customers":4,"total_introduce_completed":1}
		],"total_elements":2}`)
	cookie := h.seedSession(t, &auth.Token{Token: "tok-9"})

	w := h.request(http.MethodGet,
		"/api/v1/admin/weekly-report-summaries/summary?evalPeriod=2026-08-30", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 8, data["total_customers"])
	assert.EqualValues(t, 3, data["completed_customers"])
	assert.Equal(t, "0.375", data["completion_ratio"])
}
