package model

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Kind tags the shape of an answer value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindText
	KindBool
	KindList
)

// Value is the tagged union of answer shapes: text for free-form, date, scan
// and number-as-string input (also image data URIs and single-select option
// ids), bool for checkboxes, a list of option ids for multi-selects, and an
// explicit null for a cleared image. The zero Value means "never answered".
type Value struct {
	kind Kind
	text string
	flag bool
	list []string
}

func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

func List(ids ...string) Value {
	if ids == nil {
		ids = []string{}
	}
	return Value{kind: KindList, list: ids}
}

func Null() Value {
	return Value{kind: KindNull}
}

func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload, or "" for non-text values.
func (v Value) Text() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

func (v Value) Bool() bool {
	return v.kind == KindBool && v.flag
}

// List returns a copy of the option-id list, nil for non-list values.
func (v Value) List() []string {
	if v.kind != KindList {
		return nil
	}
	return append(make([]string, 0, len(v.list)), v.list...)
}

// Present reports whether the value counts as answered: non-empty text, a
// checked box, or any list (an emptied multi-select stays answered). Null and
// absent values do not count, and neither does an unchecked box, so a
// required checkbox is only ever satisfied by checking it.
func (v Value) Present() bool {
	switch v.kind {
	case KindText:
		return v.text != ""
	case KindBool:
		return v.flag
	case KindList:
		return true
	}
	return false
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindBool:
		return json.Marshal(v.flag)
	case KindList:
		list := v.list
		if list == nil {
			list = []string{}
		}
		return json.Marshal(list)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("model: empty answer value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "model: answer text")
		}
		*v = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return errors.Wrap(err, "model: answer flag")
		}
		*v = Bool(b)
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return errors.Wrap(err, "model: answer list")
		}
		*v = List(list...)
	case 'n':
		*v = Null()
	default:
		// legacy records may hold bare numbers; keep them as text
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return errors.Wrap(err, "model: answer value")
		}
		*v = Text(n.String())
	}
	return nil
}

// ThumbnailKey is the reserved answer key holding the first captured image of
// a run, regardless of which field triggered the capture.
const ThumbnailKey = "thumbnail"

// AnswerMap is the live, per-run mapping from field id to answer value.
type AnswerMap map[string]Value

// Clone returns a deep copy; list payloads are copied too.
func (m AnswerMap) Clone() AnswerMap {
	c := make(AnswerMap, len(m))
	for k, v := range m {
		if v.kind == KindList {
			v.list = append(make([]string, 0, len(v.list)), v.list...)
		}
		c[k] = v
	}
	return c
}
