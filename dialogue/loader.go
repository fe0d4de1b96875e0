package dialogue

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads the dialogue schema from a JSON file. On any failure it
// returns an empty graph together with the error so the caller can log
// and keep serving: a broken schema degrades dialogue endpoints, it
// must not take the process down.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("failed to read dialogue schema: %w", err)
	}
	return Parse(data)
}

// Parse builds a graph from raw schema JSON. Only JSON validity is
// checked here: dangling next_question_id references surface later as
// ErrBrokenEdge on the traversal that actually crosses them, and a
// duplicated question id resolves to its first definition.
func Parse(data []byte) (*Graph, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return Empty(), fmt.Errorf("failed to parse dialogue schema: %w", err)
	}

	index := make(map[int]*Question, len(questions))
	for i := range questions {
		q := &questions[i]
		if _, exists := index[q.ID]; !exists {
			index[q.ID] = q
		}
	}
	return &Graph{questions: questions, index: index}, nil
}
