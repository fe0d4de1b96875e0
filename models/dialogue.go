package models

import (
	"encoding/json"
	"strconv"
)

// FlexInt accepts a JSON number or a numeric string. Anything else
// (missing, null, non-numeric) leaves the value unset rather than
// failing the whole body decode.
type FlexInt struct {
	value int
	valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		f.valid = false
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		f.value, f.valid = n, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			f.value, f.valid = n, true
		}
		return nil
	}
	f.valid = false
	return nil
}

// Int reports the decoded value and whether one was present.
func (f FlexInt) Int() (int, bool) {
	return f.value, f.valid
}

type AdvanceRequest struct {
	QuestionID FlexInt `json:"question_id"`
	OptionID   FlexInt `json:"option_id"`
}
