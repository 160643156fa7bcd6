package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedRoot is returned when the document root is neither an array
// nor an object.
var ErrUnsupportedRoot = errors.New("unsupported document root: must be array or object")

// Item is one raw recipe object keyed by field name.
type Item map[string]json.RawMessage

// ParseDocument reads a recipe document. The root is either an array of
// objects or an object whose values are objects; in the latter case keys
// are ignored and values are returned in document order.
func ParseDocument(r io.Reader) ([]Item, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, ErrUnsupportedRoot
	}

	var items []Item
	switch delim {
	case '[':
		items, err = decodeArray(dec)
	case '{':
		items, err = decodeObject(dec)
	default:
		return nil, ErrUnsupportedRoot
	}
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode document: unexpected data after root value")
	}

	return items, nil
}

func decodeArray(dec *json.Decoder) ([]Item, error) {
	items := make([]Item, 0)
	for i := 0; dec.More(); i++ {
		item, err := decodeItem(dec)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return items, nil
}

func decodeObject(dec *json.Decoder) ([]Item, error) {
	items := make([]Item, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		key, _ := keyTok.(string)

		item, err := decodeItem(dec)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", key, err)
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return items, nil
}

func decodeItem(dec *json.Decoder) (Item, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if !isObject(raw) {
		return nil, fmt.Errorf("recipe must be an object, got %s", kindOf(raw))
	}

	var item Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode recipe: %w", err)
	}
	return item, nil
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func kindOf(raw json.RawMessage) string {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return "nothing"
	}
	switch t[0] {
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
