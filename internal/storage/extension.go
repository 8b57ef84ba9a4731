package storage

import (
	"encoding/json"
	"fmt"
)

// ExtensionState is a bag of named JSON documents riding along with a
// serialized asset. Snapshots use it to carry state the flat wire shape has
// no field for, such as the removal tombstones in a world save, without
// forcing a format change on every addition.
type ExtensionState map[string]json.RawMessage

// Set marshals v and stores it under key, allocating the map on first use.
func (e *ExtensionState) Set(k string, v any) error {
	if *e == nil {
		*e = ExtensionState{}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", k, err)
	}

	(*e)[k] = json.RawMessage(b)
	return nil
}

// Get unmarshals the document at key into out. A missing key reports
// (false, nil) so callers can treat absent extensions as defaults.
func (e ExtensionState) Get(key string, out any) (bool, error) {
	if e == nil {
		return false, nil
	}

	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", key, err)
	}
	return true, nil
}

// Delete removes the document at key, if present.
func (e ExtensionState) Delete(key string) {
	if e == nil {
		return
	}
	delete(e, key)
}
