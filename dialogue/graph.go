// Package dialogue holds the scripted question/option graph and the
// rules for advancing through it. The graph is built once at startup
// and never mutated, so concurrent reads need no locking.
package dialogue

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// formSentinel is the value of next_question_id that ends the dialogue
// and hands the client over to the contact form.
const formSentinel = "show_form"

type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

type Option struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Next  NextRef `json:"next_question_id"`
}

// NextRef is the target of an option: either another question's id or
// the contact-form terminal. The schema writes it as a JSON number, a
// numeric string, or the literal "show_form".
type NextRef struct {
	form       bool
	questionID int
}

// NextQuestion builds a reference to another question.
func NextQuestion(id int) NextRef {
	return NextRef{questionID: id}
}

// NextForm builds the terminal reference.
func NextForm() NextRef {
	return NextRef{form: true}
}

// IsForm reports whether this reference is the contact-form terminal.
func (n NextRef) IsForm() bool {
	return n.form
}

// QuestionID returns the referenced question id. Only meaningful when
// IsForm is false.
func (n NextRef) QuestionID() int {
	return n.questionID
}

func (n *NextRef) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		*n = NextRef{questionID: id}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("next_question_id: expected number or string, got %s", data)
	}
	if s == formSentinel {
		*n = NextRef{form: true}
		return nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("next_question_id: %q is neither a question id nor %q", s, formSentinel)
	}
	*n = NextRef{questionID: id}
	return nil
}

func (n NextRef) MarshalJSON() ([]byte, error) {
	if n.form {
		return json.Marshal(formSentinel)
	}
	return json.Marshal(n.questionID)
}

// Graph is the loaded dialogue schema: questions in definition order
// plus an id index for traversal lookups.
type Graph struct {
	questions []Question
	index     map[int]*Question
}

// Empty returns a graph with no questions. Start and Advance on it
// report ErrUnavailable / ErrUnknownQuestion; nothing panics.
func Empty() *Graph {
	return &Graph{index: map[int]*Question{}}
}

// Len reports the number of questions.
func (g *Graph) Len() int {
	return len(g.questions)
}

// Lookup finds a question by id.
func (g *Graph) Lookup(id int) (*Question, bool) {
	q, ok := g.index[id]
	return q, ok
}
