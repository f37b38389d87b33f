// Package jsonorder recovers the original key order of a JSON object from
// raw document bytes. encoding/json decodes objects into Go maps, which
// don't preserve insertion order, but operation order must match `paths`'
// enumeration order and model order must match
// `definitions`/`components.schemas`' enumeration order. This package lets
// the top-level entrypoint recover that order once, from the raw bytes,
// before the rest of the core works with ordinary (unordered) maps.
package jsonorder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KeysAt returns, in document order, the keys of the JSON object found by
// walking path from the document root. An empty path returns the root
// object's keys. Returns an error if any segment along path doesn't lead
// to a JSON object.
func KeysAt(raw []byte, path ...string) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if err := expectObjectOpen(dec); err != nil {
		return nil, err
	}

	return descend(dec, path)
}

func descend(dec *json.Decoder, path []string) ([]string, error) {
	if len(path) == 0 {
		return readKeyOrder(dec)
	}

	target := path[0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		if key == target {
			if err := expectObjectOpen(dec); err != nil {
				return nil, fmt.Errorf("value at %q is not an object: %w", target, err)
			}
			return descend(dec, path[1:])
		}

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("key %q not found", target)
}

// readKeyOrder assumes the decoder has just consumed an object's opening
// '{' and returns that object's keys in document order, consuming the
// matching closing '}'.
func readKeyOrder(dec *json.Decoder) ([]string, error) {
	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		keys = append(keys, key)

		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}

	return keys, nil
}

func expectObjectOpen(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	return nil
}

// skipValue consumes one complete JSON value (scalar, array or object)
// without interpreting it.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil // scalar value, already fully consumed
	}
	if delim != '{' && delim != '[' {
		return nil
	}

	depth := 1
	for depth > 0 {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := t.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
