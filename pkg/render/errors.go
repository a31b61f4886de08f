package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-urlgen/pkg/params"
)

var (
	// ErrIndexRequired is returned when an enumerated renderer is called
	// without an index.
	ErrIndexRequired = errors.New("render: enumerated rendering requires an index")
	// ErrKindMismatch is returned when a renderer is handed a schema of
	// another kind.
	ErrKindMismatch = errors.New("render: schema kind does not match renderer")
)

func checkKind(want params.Kind, schema *params.Schema) error {
	if schema == nil {
		return fmt.Errorf("render: schema is required")
	}
	if got := schema.Kind(); got != want {
		return fmt.Errorf("%w: %s is %s, renderer expects %s", ErrKindMismatch, schema.Name(), got, want)
	}
	return nil
}
