package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/samber/lo"

	"github.com/mrlokans/wordcache/internal/lookup"
	"github.com/mrlokans/wordcache/internal/tasks"
)

// MaxBatchWords caps the number of words accepted by one batch request.
const MaxBatchWords = 100

// WordEngine is the lookup workflow the word endpoints are built on.
type WordEngine interface {
	List(ctx context.Context) ([]string, error)
	Query(ctx context.Context, word string) (lookup.Outcome, error)
	Insert(ctx context.Context, word string) (lookup.Outcome, error)
	Remove(ctx context.Context, word string) (lookup.Outcome, error)
}

type WordsController struct {
	engine     WordEngine
	taskClient *tasks.Client
}

func NewWordsController(engine WordEngine, taskClient *tasks.Client) *WordsController {
	return &WordsController{
		engine:     engine,
		taskClient: taskClient,
	}
}

// CreateWordRequest is the request body for adding a word.
type CreateWordRequest struct {
	Word string `json:"word" binding:"required"`
}

// CreateWordsBatchRequest is the request body for queueing several words.
type CreateWordsBatchRequest struct {
	Words []string `json:"words" binding:"required,min=1"`
}

// ListWords returns every stored word.
// GET /api/word/list
func (wc *WordsController) ListWords(c *gin.Context) {
	words, err := wc.engine.List(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	c.JSON(http.StatusOK, words)
}

// GetWord returns a stored word. It never contacts the dictionary provider.
// GET /api/word/:word
func (wc *WordsController) GetWord(c *gin.Context) {
	word := c.Param("word")

	outcome, err := wc.engine.Query(c.Request.Context(), word)
	if err != nil {
		wc.respondEngineError(c, err, "get word")
		return
	}

	switch outcome.Kind {
	case lookup.OutcomeHit:
		c.JSON(http.StatusOK, outcome.Entry)
	case lookup.OutcomeNotFoundLocally:
		respondNotFound(c, outcome.Word)
	default:
		respondInternalError(c, fmt.Errorf("unexpected outcome %s", outcome.Kind), "get word")
	}
}

// CreateWord fetches a word from the dictionary provider and stores it.
// POST /api/word
func (wc *WordsController) CreateWord(c *gin.Context) {
	var req CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, `request body must be a JSON object with a non-empty "word" field`)
		return
	}

	outcome, err := wc.engine.Insert(c.Request.Context(), req.Word)
	if err != nil {
		wc.respondEngineError(c, err, "create word")
		return
	}

	switch outcome.Kind {
	case lookup.OutcomeCreated:
		c.JSON(http.StatusOK, outcome.Entry)
	case lookup.OutcomeDuplicateRejected:
		respondError(c, http.StatusConflict, outcome.Word+" already exists")
	case lookup.OutcomeRemoteNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:       "word not found",
			Suggestions: outcome.Suggestions,
		})
	case lookup.OutcomeRemoteUnavailable:
		respondError(c, http.StatusBadGateway, outcome.Detail)
	default:
		respondInternalError(c, fmt.Errorf("unexpected outcome %s", outcome.Kind), "create word")
	}
}

// DeleteWord removes a stored word.
// DELETE /api/word/:word
func (wc *WordsController) DeleteWord(c *gin.Context) {
	word := c.Param("word")

	outcome, err := wc.engine.Remove(c.Request.Context(), word)
	if err != nil {
		wc.respondEngineError(c, err, "delete word")
		return
	}

	switch outcome.Kind {
	case lookup.OutcomeRemoved:
		c.JSON(http.StatusOK, DeleteResponse{Word: outcome.Word})
	case lookup.OutcomeNotFoundLocally:
		respondNotFound(c, outcome.Word)
	default:
		respondInternalError(c, fmt.Errorf("unexpected outcome %s", outcome.Kind), "delete word")
	}
}

// CreateWordsBatch queues an insert task per word and returns immediately.
// POST /api/word/batch
func (wc *WordsController) CreateWordsBatch(c *gin.Context) {
	if wc.taskClient == nil {
		respondError(c, http.StatusServiceUnavailable, "task queue is disabled")
		return
	}

	var req CreateWordsBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, `request body must be a JSON object with a non-empty "words" array`)
		return
	}
	if len(req.Words) > MaxBatchWords {
		respondBadRequest(c, fmt.Sprintf("at most %d words per batch", MaxBatchWords))
		return
	}

	rejected := lo.Filter(req.Words, func(word string, _ int) bool {
		_, err := lookup.Normalize(word)
		return err != nil
	})
	words := lo.Uniq(lo.FilterMap(req.Words, func(word string, _ int) (string, bool) {
		normalized, err := lookup.Normalize(word)
		return normalized, err == nil
	}))
	if len(words) == 0 {
		respondBadRequest(c, "no valid words in batch")
		return
	}

	queued := lo.Map(words, func(word string, _ int) backlite.Task {
		return tasks.InsertWordTask{Word: word}
	})
	ids, err := wc.taskClient.Add(queued...).Save()
	if err != nil {
		respondInternalError(c, err, "queue words")
		return
	}

	respondAccepted(c, fmt.Sprintf("%d words queued", len(words)), gin.H{
		"task_ids": ids,
		"words":    words,
		"rejected": rejected,
	})
}

// respondEngineError maps errors returned by the engine. Expected business
// results never arrive here; they are outcomes.
func (wc *WordsController) respondEngineError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, lookup.ErrInvalidWord):
		respondBadRequest(c, "word must be a non-empty string")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("Request abandoned (%s): %v", op, err)
		respondError(c, http.StatusRequestTimeout, "request cancelled")
	default:
		respondInternalError(c, err, op)
	}
}
