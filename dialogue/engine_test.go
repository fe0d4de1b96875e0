package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchema = `[
	{"id": 1, "prompt": "Hi", "options": [
		{"id": 1, "label": "Yes", "next_question_id": 2},
		{"id": 2, "label": "No", "next_question_id": "show_form"}
	]},
	{"id": 2, "prompt": "Great", "options": []}
]`

func mustParse(t *testing.T, schema string) *Graph {
	t.Helper()
	g, err := Parse([]byte(schema))
	require.NoError(t, err)
	return g
}

func TestStart(t *testing.T) {
	g := mustParse(t, sampleSchema)

	q, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, "Hi", q.Prompt)

	// idempotent: same question every time
	again, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, q, again)
}

func TestStartEmptyGraph(t *testing.T) {
	_, err := Empty().Start()
	assert.ErrorIs(t, err, ErrUnavailable)

	g := mustParse(t, `[]`)
	_, err = g.Start()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStartUsesDefinitionOrder(t *testing.T) {
	// Entry point is the first-defined question, not the lowest id.
	g := mustParse(t, `[
		{"id": 7, "prompt": "first", "options": []},
		{"id": 1, "prompt": "second", "options": []}
	]`)

	q, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, 7, q.ID)
}

func TestAdvanceToNextQuestion(t *testing.T) {
	g := mustParse(t, sampleSchema)

	step, err := g.Advance(1, 1)
	require.NoError(t, err)
	assert.False(t, step.ShowForm)
	require.NotNil(t, step.Question)
	assert.Equal(t, 2, step.Question.ID)
	assert.Equal(t, "Great", step.Question.Prompt)
}

func TestAdvanceToForm(t *testing.T) {
	g := mustParse(t, sampleSchema)

	step, err := g.Advance(1, 2)
	require.NoError(t, err)
	assert.True(t, step.ShowForm)
	assert.Nil(t, step.Question)
}

func TestAdvanceUnknownQuestion(t *testing.T) {
	g := mustParse(t, sampleSchema)

	for _, optionID := range []int{1, 2, 99} {
		_, err := g.Advance(5, optionID)
		assert.ErrorIs(t, err, ErrUnknownQuestion)
	}
}

func TestAdvanceUnknownOption(t *testing.T) {
	g := mustParse(t, sampleSchema)

	_, err := g.Advance(1, 99)
	assert.ErrorIs(t, err, ErrUnknownOption)

	// question 2 has no options at all
	_, err = g.Advance(2, 1)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestAdvanceBrokenEdge(t *testing.T) {
	g := mustParse(t, `[
		{"id": 1, "prompt": "Hi", "options": [
			{"id": 1, "label": "go", "next_question_id": 9}
		]}
	]`)

	_, err := g.Advance(1, 1)
	assert.ErrorIs(t, err, ErrBrokenEdge)
}

func TestAdvanceIsDeterministic(t *testing.T) {
	g := mustParse(t, sampleSchema)

	for i := 0; i < 5; i++ {
		step, err := g.Advance(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, step.Question.ID)
	}
}

func TestAdvanceCyclicGraph(t *testing.T) {
	// cycles are legal; the engine never follows more than one edge
	g := mustParse(t, `[
		{"id": 1, "prompt": "a", "options": [{"id": 1, "label": "to b", "next_question_id": 2}]},
		{"id": 2, "prompt": "b", "options": [{"id": 1, "label": "back to a", "next_question_id": 1}]}
	]`)

	step, err := g.Advance(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, step.Question.ID)
}

func TestAdvanceNumericStringNext(t *testing.T) {
	g := mustParse(t, `[
		{"id": 1, "prompt": "a", "options": [{"id": 1, "label": "go", "next_question_id": "2"}]},
		{"id": 2, "prompt": "b", "options": []}
	]`)

	step, err := g.Advance(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, step.Question.ID)
}
