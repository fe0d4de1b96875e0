package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntDecoding(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  int
		valid bool
	}{
		{name: "number", body: `{"question_id": 2}`, want: 2, valid: true},
		{name: "numeric string", body: `{"question_id": "2"}`, want: 2, valid: true},
		{name: "non-numeric string", body: `{"question_id": "abc"}`},
		{name: "missing", body: `{}`},
		{name: "null", body: `{"question_id": null}`},
		{name: "object", body: `{"question_id": {"a": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req AdvanceRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			got, ok := req.QuestionID.Int()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
