package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumInput is a numeric form input. It keeps what the operator typed so a
// blank field stays blank, while Value reads blank or non-numeric text as 0.
// It unmarshals from a JSON number, a string or null and marshals back as a
// number when numeric and as "" when blank.
type NumInput string

// NumOf builds a NumInput holding v.
func NumOf(v float64) NumInput {
	return NumInput(strconv.FormatFloat(v, 'f', -1, 64))
}

// IsBlank reports whether the input is unset.
func (n NumInput) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}

// Value parses the leading numeric part of the input. Blank and non-numeric
// inputs are 0.
func (n NumInput) Value() float64 {
	return ParseNum(string(n))
}

func (n *NumInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumInput(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = NumOf(f)
	return nil
}

func (n NumInput) MarshalJSON() ([]byte, error) {
	if n.IsBlank() {
		return []byte(`""`), nil
	}
	return json.Marshal(n.Value())
}

// Number is a backend numeric field. The backend stores whatever the old
// forms posted, so numbers occasionally arrive as strings or null.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(ParseNum(s))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Float returns n as a float64.
func (n Number) Float() float64 {
	return float64(n)
}

// ParseNum reads the longest numeric prefix of s, the way a browser reads a
// number input ("12.5L" is 12.5). Anything unreadable is 0.
func ParseNum(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	end := numericPrefix(s)
	for end > 0 {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
		end--
	}
	return 0
}

func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits, dot := false, false
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		default:
			if !digits {
				return 0
			}
			return i
		}
		i++
	}
	if !digits {
		return 0
	}
	return i
}
