// Package prompt collects parameter values interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-urlgen/pkg/params"
)

var errRequired = errors.New("a value is required")

// Fill asks for every declared field of bag, offering the current value as
// the default. Required components reject empty answers; an empty answer
// on an optional field leaves it unset.
func Fill(ctx context.Context, driver Driver, bag *params.Bag) error {
	if driver == nil {
		return fmt.Errorf("prompt: driver is required")
	}
	schema := bag.Schema()
	required := make(map[string]struct{})
	for _, key := range schema.RequiredKeys() {
		required[key] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, name := range schema.FieldNames() {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		key, _ := schema.Key(name)
		cfg := InputConfig{
			Message: fmt.Sprintf("%s (%s)", name, key),
			Help:    fmt.Sprintf("Encoded as %q before renderer prefixes.", key),
		}
		if current, ok := bag.Lookup(name); ok {
			cfg.Default = fmt.Sprint(current)
		}
		if _, ok := required[key]; ok {
			cfg.Message += " *"
			cfg.Validator = func(answer string) error {
				if strings.TrimSpace(answer) == "" {
					return errRequired
				}
				return nil
			}
		}

		answer, err := driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		var value any
		if answer = strings.TrimSpace(answer); answer != "" {
			value = answer
		}
		if err := bag.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}
