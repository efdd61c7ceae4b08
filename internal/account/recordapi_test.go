package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *RecordAPIClient {
	return NewRecordAPIClient(RecordAPIConfig{
		URL:     url,
		Base:    "appBase",
		Table:   "Users",
		Token:   "tok",
		Timeout: 5 * time.Second,
	}, zerolog.Nop())
}

func TestRecordAPIClient_Query(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/appBase/Users", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "{phone}='08123'", r.URL.Query().Get("filterByFormula"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("offset") == "" {
			_, _ = w.Write([]byte(`{"records":[{"id":"rec1","fields":{"nama":"Budi","phone":"08123"}}],"offset":"next"}`))
			return
		}
		_, _ = w.Write([]byte(`{"records":[{"id":"rec2","fields":{"nama":"Ani","phone":"08123"}}]}`))
	}))
	defer server.Close()

	records, err := newTestClient(server.URL).Query(context.Background(), Where(FieldPhone, "08123"))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "Ani", records[1].Fields[FieldNama])
	assert.Equal(t, 2, calls)
}

func TestRecordAPIClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Fields map[string]any `json:"fields"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "08123", body.Fields[FieldPhone])

		_, _ = w.Write([]byte(`{"id":"recNew","fields":{"phone":"08123"}}`))
	}))
	defer server.Close()

	record, err := newTestClient(server.URL).Create(context.Background(), Fields{FieldPhone: "08123"})
	require.NoError(t, err)
	assert.Equal(t, "recNew", record.ID)
}

func TestRecordAPIClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var body updateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Records, 1)
		assert.Equal(t, "rec1", body.Records[0].ID)
		assert.Equal(t, "a|b", body.Records[0].Fields[FieldWishlist])

		_, _ = w.Write([]byte(`{"records":[]}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).Update(context.Background(), "rec1", Fields{FieldWishlist: "a|b"})
	assert.NoError(t, err)
}

func TestRecordAPIClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Query(context.Background(), Where(FieldPhone, "1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 401")
}
