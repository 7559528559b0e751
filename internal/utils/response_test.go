package utils_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/M-Muallim/ecosense-appv4/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.Success(rec, map[string]int{"plastic": 2})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp utils.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
}

func TestCreatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.Created(rec, map[string]string{"id": "abc"})

	assert.Equal(t, 201, rec.Code)

	var resp utils.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.Error(rec, 500, "could not query leaderboard", errors.New("pq: connection refused on 10.0.0.3"))

	assert.Equal(t, 500, rec.Code)

	var resp utils.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "could not query leaderboard", resp.Error)
	// Le détail interne ne doit jamais fuiter dans la réponse
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestErrorSimple(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.ErrorSimple(rec, 404, "user not found")

	assert.Equal(t, 404, rec.Code)

	var resp utils.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "user not found", resp.Error)
}
