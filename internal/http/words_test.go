package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordcache/internal/database"
	"github.com/mrlokans/wordcache/internal/database/words"
	"github.com/mrlokans/wordcache/internal/dictionary"
	"github.com/mrlokans/wordcache/internal/entities"
	"github.com/mrlokans/wordcache/internal/lookup"
)

// stubDictionary answers from a fixed table; unknown words are NotFound.
type stubDictionary struct {
	mu      sync.Mutex
	results map[string]dictionary.Result
	calls   map[string]int
}

func newStubDictionary(results map[string]dictionary.Result) *stubDictionary {
	return &stubDictionary{results: results, calls: make(map[string]int)}
}

func (s *stubDictionary) Lookup(_ context.Context, word string) dictionary.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[word]++
	if res, ok := s.results[word]; ok {
		return res
	}
	return dictionary.NotFound{Suggestions: []string{}}
}

func (s *stubDictionary) Name() string { return "stub" }

func (s *stubDictionary) callsFor(word string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[word]
}

func definitionFor(word string) string {
	return `[{"meta":{"id":"` + word + `"},"shortdef":["a definition of ` + word + `"]}]`
}

func setupWordsRouter(t *testing.T, dict dictionary.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewQuietDatabase(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	engine := lookup.NewEngine(words.NewRepository(db.DB), dict)
	return NewRouter(RouterConfig{
		Engine:   engine,
		Database: db,
		Version:  "test",
	})
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var list []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWordsController_ListWords(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		router := setupWordsRouter(t, newStubDictionary(nil))

		w := doRequest(router, "GET", "/api/word/list", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})

	t.Run("lists inserted words", func(t *testing.T) {
		dict := newStubDictionary(map[string]dictionary.Result{
			"counsel": dictionary.Found{Definition: definitionFor("counsel")},
			"dismal":  dictionary.Found{Definition: definitionFor("dismal")},
		})
		router := setupWordsRouter(t, dict)

		require.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/word", gin.H{"word": "dismal"}).Code)
		require.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"}).Code)

		w := doRequest(router, "GET", "/api/word/list", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.ElementsMatch(t, []string{"counsel", "dismal"}, decodeList(t, w))
	})
}

func TestWordsController_GetWord(t *testing.T) {
	t.Run("returns stored entry", func(t *testing.T) {
		dict := newStubDictionary(map[string]dictionary.Result{
			"counsel": dictionary.Found{Definition: definitionFor("counsel")},
		})
		router := setupWordsRouter(t, dict)
		require.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"}).Code)

		w := doRequest(router, "GET", "/api/word/COUNSEL", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var entry entities.WordEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "counsel", entry.Word)
		assert.Equal(t, definitionFor("counsel"), entry.Definition)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("miss is 404 and never calls the provider", func(t *testing.T) {
		dict := newStubDictionary(nil)
		router := setupWordsRouter(t, dict)

		w := doRequest(router, "GET", "/api/word/counsel", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "counsel not found", decodeError(t, w).Error)
		assert.Equal(t, 0, dict.callsFor("counsel"))
	})

	t.Run("blank word is 400", func(t *testing.T) {
		router := setupWordsRouter(t, newStubDictionary(nil))

		w := doRequest(router, "GET", "/api/word/%20", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWordsController_CreateWord(t *testing.T) {
	t.Run("stores the provider definition", func(t *testing.T) {
		dict := newStubDictionary(map[string]dictionary.Result{
			"counsel": dictionary.Found{Definition: definitionFor("counsel")},
		})
		router := setupWordsRouter(t, dict)

		w := doRequest(router, "POST", "/api/word", gin.H{"word": "Counsel"})

		assert.Equal(t, http.StatusOK, w.Code)
		var entry entities.WordEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "counsel", entry.Word)
		assert.Equal(t, definitionFor("counsel"), entry.Definition)
	})

	t.Run("duplicate is 409 without a second provider call", func(t *testing.T) {
		dict := newStubDictionary(map[string]dictionary.Result{
			"counsel": dictionary.Found{Definition: definitionFor("counsel")},
		})
		router := setupWordsRouter(t, dict)
		require.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"}).Code)

		w := doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "counsel already exists", decodeError(t, w).Error)
		assert.Equal(t, 1, dict.callsFor("counsel"))
	})

	t.Run("unknown word carries suggestions", func(t *testing.T) {
		dict := newStubDictionary(map[string]dictionary.Result{
			"cousel": dictionary.NotFound{Suggestions: []string{"counsel", "cousin"}},
		})
		router := setupWordsRouter(t, dict)

		w := doRequest(router, "POST", "/api/word", gin.H{"word": "cousel"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "word not found", resp.Error)
		assert.Equal(t, []string{"counsel", "cousin"}, resp.Suggestions)

		list := doRequest(router, "GET", "/api/word/list", nil)
		assert.Empty(t, decodeList(t, list))
	})

	t.Run("unknown word without suggestions omits them", func(t *testing.T) {
		router := setupWordsRouter(t, newStubDictionary(nil))

		w := doRequest(router, "POST", "/api/word", gin.H{"word": "xyzzyq"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, w.Body.String(), "suggestions")
	})

	t.Run("provider failure is 502 and stores nothing", func(t *testing.T) {
		dict := newStubDictionary(map[string]dictionary.Result{
			"counsel": dictionary.ProviderError{Detail: "dictionary provider timed out"},
		})
		router := setupWordsRouter(t, dict)

		w := doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "dictionary provider timed out", decodeError(t, w).Error)
		assert.Equal(t, http.StatusNotFound, doRequest(router, "GET", "/api/word/counsel", nil).Code)
	})

	t.Run("malformed bodies are 400", func(t *testing.T) {
		router := setupWordsRouter(t, newStubDictionary(nil))

		for _, body := range []any{gin.H{}, gin.H{"word": ""}, gin.H{"word": "   "}, gin.H{"word": 42}} {
			w := doRequest(router, "POST", "/api/word", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
		}

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/word", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWordsController_DeleteWord(t *testing.T) {
	dict := newStubDictionary(map[string]dictionary.Result{
		"counsel": dictionary.Found{Definition: definitionFor("counsel")},
	})
	router := setupWordsRouter(t, dict)
	require.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"}).Code)

	w := doRequest(router, "DELETE", "/api/word/counsel", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"word":"counsel"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, doRequest(router, "GET", "/api/word/counsel", nil).Code)

	again := doRequest(router, "DELETE", "/api/word/counsel", nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
	assert.Equal(t, "counsel not found", decodeError(t, again).Error)
}

func TestWordsController_Scenario(t *testing.T) {
	dict := newStubDictionary(map[string]dictionary.Result{
		"counsel":   dictionary.Found{Definition: definitionFor("counsel")},
		"dismal":    dictionary.Found{Definition: definitionFor("dismal")},
		"ephemeral": dictionary.Found{Definition: definitionFor("ephemeral")},
		"laconic":   dictionary.Found{Definition: definitionFor("laconic")},
		"sanguine":  dictionary.Found{Definition: definitionFor("sanguine")},
		"obdurate":  dictionary.Found{Definition: definitionFor("obdurate")},
	})
	router := setupWordsRouter(t, dict)
	all := []string{"counsel", "dismal", "ephemeral", "laconic", "sanguine", "obdurate"}

	for _, word := range all {
		w := doRequest(router, "POST", "/api/word", gin.H{"word": word})
		require.Equal(t, http.StatusOK, w.Code, word)
	}
	assert.ElementsMatch(t, all, decodeList(t, doRequest(router, "GET", "/api/word/list", nil)))

	for _, word := range all {
		assert.Equal(t, http.StatusConflict, doRequest(router, "POST", "/api/word", gin.H{"word": word}).Code, word)
		assert.Equal(t, 1, dict.callsFor(word), word)
	}

	for _, word := range all[:3] {
		require.Equal(t, http.StatusOK, doRequest(router, "DELETE", "/api/word/"+word, nil).Code, word)
	}
	assert.ElementsMatch(t, all[3:], decodeList(t, doRequest(router, "GET", "/api/word/list", nil)))

	for _, word := range all[:3] {
		assert.Equal(t, http.StatusNotFound, doRequest(router, "GET", "/api/word/"+word, nil).Code, word)
	}
}

func TestWordsController_CreateWordsBatch_QueueDisabled(t *testing.T) {
	router := setupWordsRouter(t, newStubDictionary(nil))

	w := doRequest(router, "POST", "/api/word/batch", gin.H{"words": []string{"counsel"}})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "task queue is disabled", decodeError(t, w).Error)
}

// erroringEngine fails every operation with a storage error.
type erroringEngine struct{ err error }

func (e erroringEngine) List(context.Context) ([]string, error) { return nil, e.err }
func (e erroringEngine) Query(context.Context, string) (lookup.Outcome, error) {
	return lookup.Outcome{}, e.err
}
func (e erroringEngine) Insert(context.Context, string) (lookup.Outcome, error) {
	return lookup.Outcome{}, e.err
}
func (e erroringEngine) Remove(context.Context, string) (lookup.Outcome, error) {
	return lookup.Outcome{}, e.err
}

func TestWordsController_StorageErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterConfig{Engine: erroringEngine{err: assert.AnError}})

	requests := []struct {
		method string
		path   string
		body   any
	}{
		{"GET", "/api/word/list", nil},
		{"GET", "/api/word/counsel", nil},
		{"POST", "/api/word", gin.H{"word": "counsel"}},
		{"DELETE", "/api/word/counsel", nil},
	}

	for _, r := range requests {
		w := doRequest(router, r.method, r.path, r.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, r.path)
		assert.Equal(t, "internal server error", decodeError(t, w).Error)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	}
}

func TestWordsController_CancelledRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(RouterConfig{Engine: erroringEngine{err: context.Canceled}})

	w := doRequest(router, "POST", "/api/word", gin.H{"word": "counsel"})

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}
