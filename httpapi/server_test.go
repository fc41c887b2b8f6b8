// Copyright 2025 Hunnit Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aimock "github.com/hunnit/stylist/ai/mock"
	"github.com/hunnit/stylist/answer"
	"github.com/hunnit/stylist/core"
	"github.com/hunnit/stylist/httpapi"
	"github.com/hunnit/stylist/search"
	vsmock "github.com/hunnit/stylist/vectorstore/mock"
)

type fixture struct {
	store   *vsmock.MockStore
	primary *aimock.MockGenerator
	server  *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:   vsmock.NewMockStore(),
		primary: aimock.NewMockGenerator("the Flex Hoodie is a great pick"),
	}
	f.store.SearchFunc = func(_ context.Context, _ []float32, _ int, _ []core.ID) ([]core.CandidateChunk, error) {
		return []core.CandidateChunk{
			{ProductID: 1, Score: 0.8, Title: "Flex Hoodie", Category: "hoodie", ChunkText: "Flex Hoodie"},
		}, nil
	}

	synthesizer, err := answer.NewSynthesizer(f.primary, nil)
	require.NoError(t, err)

	searcher, err := search.NewSearcher(aimock.NewMockEmbedder(), f.store, nil, synthesizer)
	require.NoError(t, err)

	server, err := httpapi.NewServer(searcher)
	require.NoError(t, err)

	f.server = httptest.NewServer(server.Router())
	t.Cleanup(f.server.Close)
	return f
}

func TestNewServer(t *testing.T) {
	t.Run("requires searcher", func(t *testing.T) {
		_, err := httpapi.NewServer(nil)
		require.ErrorIs(t, err, httpapi.ErrSearcherRequired)
	})
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("GET returns answer and results", func(t *testing.T) {
		f := newFixture(t)

		resp, err := http.Get(f.server.URL + "/api/v1/search?query=warm+hoodie")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body core.SearchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "the Flex Hoodie is a great pick", body.Answer)
		require.Len(t, body.Results, 1)
		assert.Equal(t, core.ID(1), body.Results[0].ID)
	})

	t.Run("GET and POST give identical responses", func(t *testing.T) {
		f := newFixture(t)

		getResp, err := http.Get(f.server.URL + "/api/v1/search?query=warm+hoodie")
		require.NoError(t, err)
		defer getResp.Body.Close()
		var fromGet core.SearchResponse
		require.NoError(t, json.NewDecoder(getResp.Body).Decode(&fromGet))

		postResp, err := http.Post(f.server.URL+"/api/v1/search", "application/json",
			strings.NewReader(`{"query": "warm hoodie"}`))
		require.NoError(t, err)
		defer postResp.Body.Close()
		var fromPost core.SearchResponse
		require.NoError(t, json.NewDecoder(postResp.Body).Decode(&fromPost))

		assert.Equal(t, fromGet, fromPost)
	})

	t.Run("missing query is a 400", func(t *testing.T) {
		f := newFixture(t)

		for _, call := range []func() (*http.Response, error){
			func() (*http.Response, error) {
				return http.Get(f.server.URL + "/api/v1/search")
			},
			func() (*http.Response, error) {
				return http.Post(f.server.URL+"/api/v1/search", "application/json",
					strings.NewReader(`{}`))
			},
		} {
			resp, err := call()
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			resp.Body.Close()
		}
		assert.Equal(t, 0, f.primary.CallCount())
	})

	t.Run("malformed JSON body is a 400", func(t *testing.T) {
		f := newFixture(t)

		resp, err := http.Post(f.server.URL+"/api/v1/search", "application/json",
			strings.NewReader(`{"query":`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("pipeline failure is a generic 500", func(t *testing.T) {
		f := newFixture(t)
		f.store.SearchFunc = func(_ context.Context, _ []float32, _ int, _ []core.ID) ([]core.CandidateChunk, error) {
			return nil, errors.New("qdrant unreachable")
		}

		resp, err := http.Get(f.server.URL + "/api/v1/search?query=warm+hoodie")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		// Provider detail must not leak to clients
		assert.Equal(t, map[string]string{"detail": "Internal server error"}, body)
	})

	t.Run("responses carry a request ID", func(t *testing.T) {
		f := newFixture(t)

		resp, err := http.Get(f.server.URL + "/api/v1/search?query=warm+hoodie")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})

	t.Run("incoming request ID is echoed", func(t *testing.T) {
		f := newFixture(t)

		req, err := http.NewRequest(http.MethodGet, f.server.URL+"/api/v1/search?query=hoodie", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-ID", "trace-123")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "trace-123", resp.Header.Get("X-Request-ID"))
	})
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "ok"}, body)
}

func TestCORS(t *testing.T) {
	f := newFixture(t)

	t.Run("preflight is allowed for any origin", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, f.server.URL+"/api/v1/search", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:5173")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("simple requests carry the allow-origin header", func(t *testing.T) {
		resp, err := http.Get(f.server.URL + "/api/v1/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
