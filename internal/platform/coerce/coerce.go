package coerce

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// maxIntFloat is 2^63 on 64-bit platforms; int(f) is only defined below it.
const maxIntFloat = float64(math.MaxInt)

// Int is a JSON integer that tolerates provider drift: numbers, numeric
// strings, null and garbage all decode without error. Valid reports whether
// a usable integer was found.
type Int struct {
	Value int
	Valid bool
}

func NewInt(v int) Int {
	return Int{Value: v, Valid: true}
}

func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := sonic.Unmarshal(data, &text); err != nil {
			return nil
		}
		if v, ok := Atoi(text); ok {
			*i = NewInt(v)
		}
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || f >= maxIntFloat || f < -maxIntFloat {
		return nil
	}
	*i = NewInt(int(f))
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(i.Value)), nil
}

// Or returns the value when valid, fallback otherwise.
func (i Int) Or(fallback int) int {
	if !i.Valid {
		return fallback
	}
	return i.Value
}

// String renders the value, or "" when absent.
func (i Int) String() string {
	if !i.Valid {
		return ""
	}
	return strconv.Itoa(i.Value)
}

// Atoi parses a base-10 integer with surrounding whitespace and an optional sign.
func Atoi(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}
