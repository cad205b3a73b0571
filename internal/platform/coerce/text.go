package coerce

import (
	"bytes"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Text is a JSON string that never fails to decode. Numbers and booleans keep
// their literal text; null, objects and arrays decode to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case '{', '[', 'n':
	default:
		*t = Text(data)
	}
	return nil
}

// TextList is a JSON string array that never fails to decode. A bare string
// becomes a one-element list; empty and non-text items are dropped.
type TextList []string

func (l *TextList) UnmarshalJSON(data []byte) error {
	*l = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var items []Text
	switch data[0] {
	case '[':
		if err := sonic.Unmarshal(data, &items); err != nil {
			return nil
		}
	case '"':
		var item Text
		_ = item.UnmarshalJSON(data)
		items = []Text{item}
	default:
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(string(item)); v != "" {
			out = append(out, v)
		}
	}
	if len(out) > 0 {
		*l = out
	}
	return nil
}
