package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/common"
)

func TestStore_FetchDecodesRecord(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/v1/users/u%40example.com/record", r.URL.EscapedPath())
		_ = json.NewEncoder(w).Encode(models.UserRecord{
			SavedRecipes: []models.RecipeSummary{{ID: "7", Title: "Pelmeni"}},
			UploadCount:  2,
		})
	}))
	defer srv.Close()

	s := NewStore(srv.URL, func() string { return "tok-123" })
	rec, err := s.Fetch(context.Background(), "u@example.com")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, rec.SavedRecipes, 1)
	require.Equal(t, 2, rec.UploadCount)
}

func TestStore_FetchNotFoundMeansEmptyRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewStore(srv.URL, nil)
	rec, err := s.Fetch(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.Empty(t, rec.SavedRecipes)
}

func TestStore_FetchUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewStore(srv.URL, nil)
	_, err := s.Fetch(context.Background(), "u@example.com")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestStore_MergeSendsPatch(t *testing.T) {
	var gotMethod string
	var gotPatch models.RecordPatch
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	count := 3
	s := NewStore(srv.URL, nil)
	err := s.Merge(context.Background(), "u@example.com", models.RecordPatch{UploadCount: &count})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, gotMethod)
	require.NotNil(t, gotPatch.UploadCount)
	require.Equal(t, 3, *gotPatch.UploadCount)
	require.Nil(t, gotPatch.SavedRecipes, "untouched fields must stay omitted")
}

func TestStore_MergeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewStore(srv.URL, nil)
	err := s.Merge(context.Background(), "u@example.com", models.RecordPatch{})
	require.Error(t, err)
}
