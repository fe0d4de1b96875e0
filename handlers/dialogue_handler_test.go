package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatbot_backend/dialogue"
	"chatbot_backend/handlers"
	"chatbot_backend/routes"
)

const testSchema = `[
	{"id": 1, "prompt": "Hi", "options": [
		{"id": 1, "label": "Yes", "next_question_id": 2},
		{"id": 2, "label": "No", "next_question_id": "show_form"},
		{"id": 3, "label": "Broken", "next_question_id": 9}
	]},
	{"id": 2, "prompt": "Great", "options": []}
]`

func newDialogueApp(t *testing.T, graph *dialogue.Graph) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.RegisterDialogueRoutes(app, handlers.NewDialogueHandler(graph))
	return app
}

func parsedGraph(t *testing.T) *dialogue.Graph {
	t.Helper()
	g, err := dialogue.Parse([]byte(testSchema))
	require.NoError(t, err)
	return g
}

func postNext(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/next", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestStartReturnsEntryQuestion(t *testing.T) {
	app := newDialogueApp(t, parsedGraph(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/start", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Hi", body["prompt"])
}

func TestStartUnavailableWhenGraphEmpty(t *testing.T) {
	app := newDialogueApp(t, dialogue.Empty())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/start", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestNextReturnsFollowingQuestion(t *testing.T) {
	app := newDialogueApp(t, parsedGraph(t))

	resp := postNext(t, app, `{"question_id": 1, "option_id": 1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["id"])
}

func TestNextAcceptsStringIDs(t *testing.T) {
	// the web client posts form values as strings
	app := newDialogueApp(t, parsedGraph(t))

	resp := postNext(t, app, `{"question_id": "1", "option_id": "1"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["id"])
}

func TestNextShowForm(t *testing.T) {
	app := newDialogueApp(t, parsedGraph(t))

	resp := postNext(t, app, `{"question_id": 1, "option_id": 2}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "show_form", body["action"])
}

func TestNextInvalidQuestion(t *testing.T) {
	app := newDialogueApp(t, parsedGraph(t))

	for _, body := range []string{
		`{"question_id": 5, "option_id": 1}`,
		`{"question_id": "abc", "option_id": 1}`,
		`{"option_id": 1}`,
		`{"question_id": 5}`,
	} {
		resp := postNext(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
		assert.Equal(t, "Invalid question_id", decodeBody(t, resp)["error"], "body %s", body)
	}
}

func TestNextInvalidOption(t *testing.T) {
	app := newDialogueApp(t, parsedGraph(t))

	for _, body := range []string{
		`{"question_id": 1, "option_id": 99}`,
		`{"question_id": 1, "option_id": "abc"}`,
		`{"question_id": 1}`,
	} {
		resp := postNext(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
		assert.Equal(t, "Invalid option_id", decodeBody(t, resp)["error"], "body %s", body)
	}
}

func TestNextBrokenEdgeIsServerError(t *testing.T) {
	app := newDialogueApp(t, parsedGraph(t))

	resp := postNext(t, app, `{"question_id": 1, "option_id": 3}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestNextEmptyGraphRejectsAnyQuestion(t *testing.T) {
	app := newDialogueApp(t, dialogue.Empty())

	resp := postNext(t, app, `{"question_id": 1, "option_id": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
