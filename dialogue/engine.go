package dialogue

import "errors"

var (
	// ErrUnavailable means the graph has no questions (the schema was
	// missing or malformed at startup).
	ErrUnavailable = errors.New("dialogue: no questions loaded")

	// ErrUnknownQuestion / ErrUnknownOption mean the caller supplied an
	// id that does not exist in the graph. Client-input errors.
	ErrUnknownQuestion = errors.New("dialogue: unknown question id")
	ErrUnknownOption   = errors.New("dialogue: unknown option id")

	// ErrBrokenEdge means the chosen option points at a question that
	// was never defined. The input was valid; the schema is not. Always
	// reported as a server-side failure.
	ErrBrokenEdge = errors.New("dialogue: next question not defined")
)

// Step is the outcome of one advancement: either the next question or
// the handoff to the contact form.
type Step struct {
	Question *Question
	ShowForm bool
}

// Start returns the dialogue entry point: the first question in
// definition order, regardless of its numeric id.
func (g *Graph) Start() (*Question, error) {
	if len(g.questions) == 0 {
		return nil, ErrUnavailable
	}
	return &g.questions[0], nil
}

// Advance computes the step that follows choosing optionID on
// questionID. It is a pure function of the graph and the two ids; the
// client carries its own position between calls.
func (g *Graph) Advance(questionID, optionID int) (Step, error) {
	question, ok := g.index[questionID]
	if !ok {
		return Step{}, ErrUnknownQuestion
	}

	var chosen *Option
	for i := range question.Options {
		if question.Options[i].ID == optionID {
			chosen = &question.Options[i]
			break
		}
	}
	if chosen == nil {
		return Step{}, ErrUnknownOption
	}

	if chosen.Next.IsForm() {
		return Step{ShowForm: true}, nil
	}

	next, ok := g.index[chosen.Next.QuestionID()]
	if !ok {
		return Step{}, ErrBrokenEdge
	}
	return Step{Question: next}, nil
}
