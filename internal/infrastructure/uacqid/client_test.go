package uacqid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/census-rm/caseapi/internal/domain/questionnaire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("returns the minted pair", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/uacqid/create", r.URL.Path)
			assert.Equal(t, "21", r.URL.Query().Get("questionnaireType"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"uac":"abcd1234efgh5678","qid":"0121000000000100"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)

		uac, qid, err := client.Generate(context.Background(), questionnaire.TypeIndividualEngland)

		require.NoError(t, err)
		assert.Equal(t, "abcd1234efgh5678", uac)
		assert.Equal(t, "0121000000000100", qid)
	})

	t.Run("fails on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)

		_, _, err := client.Generate(context.Background(), questionnaire.TypeHouseholdEngland)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("fails on incomplete pair", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"uac":"abcd1234efgh5678"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second)

		_, _, err := client.Generate(context.Background(), questionnaire.TypeHouseholdEngland)

		assert.Error(t, err)
	})

	t.Run("fails when the generator is unreachable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", time.Second)

		_, _, err := client.Generate(context.Background(), questionnaire.TypeHouseholdEngland)

		assert.Error(t, err)
	})
}
