package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// List holds a repeated element from the ONS API. The XML to JSON conversion
// renders an element occurring once as a plain object and an element occurring
// more than once as an array, so both forms are accepted.
type List[T any] []T

// UnmarshalJSON decodes either a JSON array or a single JSON value into the list
func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	if b[0] == '[' {
		var items []T
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var item T
	if err := json.Unmarshal(b, &item); err != nil {
		return err
	}
	*l = List[T]{item}
	return nil
}

// LocalizedValue is a value tagged with the language it is written in
type LocalizedValue struct {
	Lang  string `json:"@xml.lang"`
	Value string `json:"$"`
}

// Names contains the localized names of a dataset
type Names struct {
	Name List[LocalizedValue] `json:"name"`
}

// First returns the first value tagged with lang
func First(values []LocalizedValue, lang string) (string, bool) {
	for _, v := range values {
		if v.Lang == lang {
			return v.Value, true
		}
	}
	return "", false
}

// All returns every value tagged with lang, in the order given
func All(values []LocalizedValue, lang string) []string {
	var matches []string
	for _, v := range values {
		if v.Lang == lang {
			matches = append(matches, v.Value)
		}
	}
	return matches
}
