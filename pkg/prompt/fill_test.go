package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-urlgen/pkg/params"
	"github.com/goliatone/go-urlgen/pkg/prompt"
	"github.com/goliatone/go-urlgen/pkg/testsupport"
)

type scriptedDriver struct {
	answers map[string]string
	asked   []prompt.InputConfig
	err     error
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg)
	if d.err != nil {
		return "", d.err
	}
	answer, ok := d.answers[cfg.Message]
	if !ok {
		return cfg.Default, nil
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

var page = params.Define("Page", params.URLGenerator,
	params.CustomPrefix("cd"),
	params.Field("path", params.Component{Key: "dp", Required: true}),
	params.Field("title", params.Component{Key: "dt"}),
	params.VariableField("author", 3),
)

func TestFill(t *testing.T) {
	bag := testsupport.MustBag(t, page, params.Values{"title": "Old", "author": "ann"})
	driver := &scriptedDriver{answers: map[string]string{
		"path (dp) *":  " /home ",
		"author (cd3)": "",
	}}

	if err := prompt.Fill(testsupport.Context(), driver, bag); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]any{"dp": "/home", "dt": "Old"}
	if diff := cmp.Diff(want, bag.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if len(driver.asked) != 3 || driver.asked[1].Default != "Old" {
		t.Fatalf("unexpected prompts: %+v", driver.asked)
	}
}

func TestFill_RequiredRejectsEmpty(t *testing.T) {
	bag := testsupport.MustBag(t, page, nil)
	driver := &scriptedDriver{answers: map[string]string{"path (dp) *": "  "}}

	if err := prompt.Fill(testsupport.Context(), driver, bag); err == nil {
		t.Fatalf("expected validation error")
	}
	if !bag.IsEmpty() {
		t.Fatalf("bag should stay empty, got %s", bag)
	}
}

func TestFill_Aborted(t *testing.T) {
	bag := testsupport.MustBag(t, page, nil)
	driver := &scriptedDriver{err: prompt.ErrAborted}

	if err := prompt.Fill(testsupport.Context(), driver, bag); !errors.Is(err, prompt.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestFill_NilDriver(t *testing.T) {
	bag := testsupport.MustBag(t, page, nil)
	if err := prompt.Fill(testsupport.Context(), nil, bag); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}
