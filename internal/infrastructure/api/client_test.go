package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"bookfast-web/config"
	"bookfast-web/internal/infrastructure/api"
	"bookfast-web/pkg/metrics"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := api.NewClient(config.APIConfig{BaseURL: srv.URL + "/api", Timeout: 2 * time.Second}, log, metrics.New("test"))
	require.NoError(t, err)
	return client
}

func TestClientSendsTokenAndDecodes(t *testing.T) {
	t.Parallel()

	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/termini/", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("salon"))
		assert.Equal(t, "Token abc", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"2026-10-17-09:00-09:30","salon":7,"datum":"2026-10-17","vrijeme_od":"09:00","vrijeme_do":"09:30","slobodan":true}]`))
	})

	var out []api.SlotModel
	err := client.Get(context.Background(), "abc", "termini/", url.Values{"salon": {"7"}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].IsAvailable)
}

func TestClientPostsJSON(t *testing.T) {
	t.Parallel()

	client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body.Email)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"t1","user":{"id":3,"username":"ana","ime":"Ana","email":"ana@example.com","is_staff":false}}`))
	})

	var out api.AuthResponse
	err := client.Post(context.Background(), "", "auth/prijava/", api.LoginRequest{Email: "ana@example.com", Password: "x"}, &out)
	require.NoError(t, err)
	result := out.ToEntity()
	assert.Equal(t, "t1", result.Token)
	assert.Equal(t, "Ana", result.User.FullName)
}

func TestClientStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"Invalid token."}`, api.ErrUnauthorized, ""},
		{"forbidden", http.StatusForbidden, `{"error":"Nemaš pravo na ovu akciju."}`, nil, "Nemaš pravo na ovu akciju."},
		{"not found", http.StatusNotFound, `{"detail":"Not found."}`, api.ErrNotFound, ""},
		{"server error", http.StatusInternalServerError, `boom`, api.ErrUpstream, ""},
		{"error key", http.StatusBadRequest, `{"error":"Termin više nije slobodan."}`, nil, "Termin više nije slobodan."},
		{"non field errors", http.StatusBadRequest, `{"non_field_errors":["Radno vrijeme nije ispravno."]}`, nil, "Radno vrijeme nije ispravno."},
		{"field errors", http.StatusBadRequest, `{"email":["Korisnik s ovim emailom već postoji."]}`, nil, "Korisnik s ovim emailom već postoji."},
		{"list body", http.StatusBadRequest, `["Ne možeš dodavati frizera u tuđi salon."]`, nil, "Ne možeš dodavati frizera u tuđi salon."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := setupClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Delete(context.Background(), "abc", "saloni/4/")
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			var apiErr *api.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClientUnavailable(t *testing.T) {
	t.Parallel()

	log := logrus.New()
	log.SetOutput(io.Discard)
	client, err := api.NewClient(config.APIConfig{BaseURL: "http://127.0.0.1:1/api/", Timeout: time.Second}, log, nil)
	require.NoError(t, err)

	err = client.Get(context.Background(), "", "saloni/", nil, nil)
	assert.ErrorIs(t, err, api.ErrUnavailable)
}

func TestModelsNormalizeUpstreamValues(t *testing.T) {
	t.Parallel()

	salon := api.SalonModel{ID: 1, Name: "Salon Ana", OpensAt: "08:00:00", ClosesAt: "16:00:00", SlotDuration: 30}
	s := salon.ToEntity()
	assert.Equal(t, "08:00", s.OpensAt)
	assert.Equal(t, "16:00", s.ClosesAt)

	booking := api.BookingModel{ID: 9, Status: "otkazana", StartTime: "10:00:00", EndTime: "10:30:00", CreatedAt: "2026-10-01T08:00:00.123456+02:00"}
	b := booking.ToEntity()
	assert.True(t, b.IsCancelled())
	assert.Equal(t, "10:00", b.StartTime)
	assert.False(t, b.CreatedAt.IsZero())

	assert.Equal(t, "confirmed", string(api.BookingStatus("potvrdena")))
}
