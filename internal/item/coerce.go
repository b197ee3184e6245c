package item

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errInvalidNumber = errors.New(ErrMsgInvalidNumber)

// flexFloat accepts a JSON number or a numeric string
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	text, err := numericText(data)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return errInvalidNumber
	}
	*f = flexFloat(v)
	return nil
}

// flexInt accepts a JSON integer, a JSON float (truncated toward zero) or a
// string holding an integer
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	quoted := len(data) > 0 && data[0] == '"'
	text, err := numericText(data)
	if err != nil {
		return err
	}

	if v, err := strconv.Atoi(text); err == nil {
		*n = flexInt(v)
		return nil
	}
	if quoted {
		return errInvalidNumber
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
		return errInvalidNumber
	}
	*n = flexInt(math.Trunc(v))
	return nil
}

// numericText returns the number literal or the trimmed string content
func numericText(data []byte) (string, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return "", errInvalidNumber
	}
	return num.String(), nil
}
