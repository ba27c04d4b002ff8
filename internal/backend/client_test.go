package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationAttachedFromContext(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	ctx := WithAuthorization(context.Background(), "Bearer tok-123")

	_, err := client.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotHeader)
}

func TestUnauthenticatedContextSendsNoHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotHeader)
}

func TestStatusMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account-users/expired":
			w.WriteHeader(http.StatusUnauthorized)
		case "/account-users/missing":
			w.WriteHeader(http.StatusNotFound)
		case "/account-users/broken":
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"username taken"}`))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	_, err := client.GetAccount(ctx, "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = client.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetAccount(ctx, "broken")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "username taken", apiErr.Message)
}

func TestListReportSummariesQueryAssembly(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"items":[{"id":"r1","eval_type":"FIRST_WEEK"}],"total_elements":1}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	page, err := client.ListReportSummaries(context.Background(), ListReportsQuery{
		StaffName:  "张三",
		EvalPeriod: "2026-08-30",
		EvalType:   "FIRST_WEEK",
		PageSize:   50,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"staffName":  "张三",
		"evalPeriod": "2026-08-30",
		"evalType":   "FIRST_WEEK",
		"page_size":  "50",
	}, gotQuery)
	require.Len(t, page.Rows(), 1)
	assert.Equal(t, "r1", page.Rows()[0].ID)
	assert.EqualValues(t, 1, page.TotalElements)
}

func TestPageRowsHandlesBothEnvelopes(t *testing.T) {
	items := Page[Employee]{Items: []Employee{{ID: "1"}}, TotalElements: 1}
	content := Page[Employee]{Content: []Employee{{ID: "2"}}, TotalElements: 1}

	assert.Equal(t, "1", items.Rows()[0].ID)
	assert.Equal(t, "2", content.Rows()[0].ID)
	assert.Empty(t, (&Page[Employee]{}).Rows())
}
