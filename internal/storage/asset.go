package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/pixil98/go-errors"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]*$`)

type ValidatingSpec interface {
	Validate() error
}

type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// NormalizeId strips a trailing catalog-file extension from an identifier.
// Room files sometimes reference entries as "cave_troll.yml"; the catalog is
// keyed by the bare id, so references are normalized once at load time rather
// than stored under both keys.
func NormalizeId(id string) Identifier {
	ext := strings.ToLower(filepath.Ext(id))
	switch ext {
	case ".yml", ".yaml", ".json":
		return Identifier(id[:len(id)-len(ext)])
	}
	return Identifier(id)
}

type Asset[T ValidatingSpec] struct {
	Version    uint       `json:"version"`
	Identifier Identifier `json:"id"`
	Spec       T          `json:"spec"`
}

func (a *Asset[T]) Id() Identifier {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if !identifierPattern.MatchString(a.Identifier.String()) {
		el.Add(fmt.Errorf("id may only contain letters, digits, '-' and '_'"))
	}

	el.Add(a.Spec.Validate())

	return el.Err()
}

// SmartIdentifier is a foreign key to another catalog entry. It unmarshals
// from a bare id string and is resolved to the definition after all stores
// are loaded.
type SmartIdentifier[T ValidatingSpec] struct {
	key string
	val T
}

func NewSmartIdentifier[T ValidatingSpec](key string) SmartIdentifier[T] {
	return SmartIdentifier[T]{key: key}
}

func NewResolvedSmartIdentifier[T ValidatingSpec](key string, val T) SmartIdentifier[T] {
	return SmartIdentifier[T]{key: key, val: val}
}

func (id *SmartIdentifier[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &id.key)
}

func (id SmartIdentifier[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.key)
}

func (id *SmartIdentifier[T]) Resolve(st Storer[T]) error {
	id.val = st.Get(id.key)
	if reflect.ValueOf(id.val).IsNil() {
		var zero T
		return fmt.Errorf("%s %q not found", reflect.TypeOf(zero).Elem().Name(), id.key)
	}
	return nil
}

// Id returns the referenced identifier.
func (id SmartIdentifier[T]) Id() string {
	return id.key
}

// Get returns the resolved definition. It is nil until Resolve succeeds.
func (id SmartIdentifier[T]) Get() T {
	return id.val
}
