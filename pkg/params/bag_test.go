package params_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-urlgen/pkg/params"
)

var product = params.Define("Product", params.URLGenerator,
	params.CustomPrefix("cd"),
	params.Field("name", params.Component{Key: "nm", Required: true}),
	params.Field("brand", params.Component{Key: "br"}),
	params.VariableField("color", 2),
)

func newProduct(t *testing.T, src params.Source, named params.Values) *params.Bag {
	t.Helper()
	bag, err := params.New(product, src, named)
	if err != nil {
		t.Fatalf("new bag: %v", err)
	}
	return bag
}

func TestNew_EmptyBag(t *testing.T) {
	bag := newProduct(t, params.Source{}, nil)
	if !bag.IsEmpty() || bag.Len() != 0 {
		t.Fatalf("new bag should be empty, got %s", bag)
	}
}

func TestNew_AbstractSchemaFails(t *testing.T) {
	for _, schema := range []*params.Schema{params.Base, params.URLGenerator} {
		if _, err := params.New(schema, params.Source{}, nil); !errors.Is(err, params.ErrAbstractSchema) {
			t.Fatalf("expected ErrAbstractSchema, got %v", err)
		}
	}
}

func TestNew_NilSchemaFails(t *testing.T) {
	_, err := params.New(nil, params.Source{}, nil)
	if !errors.Is(err, params.ErrNilSchema) {
		t.Fatalf("expected ErrNilSchema, got %v", err)
	}
	if errors.Is(err, params.ErrAbstractSchema) {
		t.Fatalf("nil schema should not report as abstract")
	}
}

func TestNew_PrefixedRequiresMeta(t *testing.T) {
	missingIndex := params.Define("NoIndex", params.PrefixURLGenerator, params.PresetPrefix("p_"))
	_, err := params.New(missingIndex, params.Source{}, nil)
	var metaErr *params.MetaError
	if !errors.As(err, &metaErr) || metaErr.Field != "index_prefix" {
		t.Fatalf("expected index_prefix MetaError, got %v", err)
	}
	if !errors.Is(err, params.ErrMissingMeta) {
		t.Fatalf("expected ErrMissingMeta, got %v", err)
	}

	missingPreset := params.Define("NoPreset", params.PrefixURLGenerator, params.IndexPrefix("i_"))
	if _, err := params.New(missingPreset, params.Source{}, nil); !errors.As(err, &metaErr) || metaErr.Field != "preset_prefix" {
		t.Fatalf("expected preset_prefix MetaError, got %v", err)
	}
}

func TestNew_EnumeratedDoesNotRequireMeta(t *testing.T) {
	s := params.Define("Item", params.EnumeratedURLGenerator)
	if _, err := params.New(s, params.Source{}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_FromMapAndNamed(t *testing.T) {
	bag := newProduct(t,
		params.FromMap(map[string]any{"name": "widget", "color": "red"}),
		params.Values{"brand": "acme", "name": nil},
	)

	want := map[string]any{"nm": "widget", "br": "acme", "cd2": "red"}
	if diff := cmp.Diff(want, bag.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_FromCompatibleBagCopiesStore(t *testing.T) {
	child := params.Define("ChildProduct", product, params.Field("price", params.Component{Key: "pr"}))
	src, err := params.New(child, params.FromMap(map[string]any{"name": "widget", "price": 10}), nil)
	if err != nil {
		t.Fatalf("new child: %v", err)
	}

	bag := newProduct(t, params.FromBag(src), nil)
	want := map[string]any{"nm": "widget", "pr": 10}
	if diff := cmp.Diff(want, bag.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}

	_ = bag.Set("name", "other")
	if src.Get("name") != "widget" {
		t.Fatalf("source bag mutated through copy")
	}
}

func TestNew_UnknownFieldFails(t *testing.T) {
	_, err := params.New(product, params.FromMap(map[string]any{"bogus": 1}), nil)
	var fieldErr *params.InvalidFieldError
	if !errors.As(err, &fieldErr) || fieldErr.Name != "bogus" {
		t.Fatalf("expected InvalidFieldError for bogus, got %v", err)
	}

	_, err = params.New(product, params.Source{}, params.Values{"bogus": nil})
	if !errors.Is(err, params.ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField for named value, got %v", err)
	}
}

func TestBag_Accessors(t *testing.T) {
	bag := newProduct(t, params.Source{}, nil)

	if err := bag.Set("color", "blue"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := bag.Lookup("color"); !ok || v != "blue" {
		t.Fatalf("lookup color = %v, %v", v, ok)
	}
	if err := bag.Set("color", "green"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if bag.Get("color") != "green" {
		t.Fatalf("overwrite not applied")
	}
	if bag.Get("brand") != nil {
		t.Fatalf("unset field should read nil")
	}
	if err := bag.Delete("brand"); err != nil {
		t.Fatalf("deleting an unset field should be a no-op, got %v", err)
	}
	if err := bag.Set("bogus", 1); !errors.Is(err, params.ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestBag_SetNilEqualsDelete(t *testing.T) {
	viaSet := newProduct(t, params.Source{}, params.Values{"brand": "acme"})
	viaDelete := viaSet.Copy()

	if err := viaSet.Set("brand", nil); err != nil {
		t.Fatalf("set nil: %v", err)
	}
	if err := viaDelete.Delete("brand"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if !viaSet.IsEmpty() || !viaDelete.IsEmpty() {
		t.Fatalf("both bags should be empty: %s / %s", viaSet, viaDelete)
	}
	if _, ok := viaSet.Lookup("brand"); ok {
		t.Fatalf("brand should be unset")
	}
}

func TestBag_UpdateFromBagClearsMissing(t *testing.T) {
	bag := newProduct(t, params.Source{}, params.Values{"name": "widget", "brand": "acme"})
	other := newProduct(t, params.Source{}, params.Values{"name": "gadget"})

	if err := bag.Update(params.FromBag(other), params.Values{"color": "red"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	want := map[string]any{"nm": "gadget", "cd2": "red"}
	if diff := cmp.Diff(want, bag.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBag_UpdateFromEmptyBagClearsAll(t *testing.T) {
	bag := newProduct(t, params.Source{}, params.Values{"name": "widget"})
	empty := newProduct(t, params.Source{}, nil)

	if err := bag.Update(params.FromBag(empty), nil); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !bag.IsEmpty() {
		t.Fatalf("expected empty bag, got %s", bag)
	}
}

func TestBag_UpdateFromIncompatibleBag(t *testing.T) {
	other := params.Define("Other", params.URLGenerator, params.Field("name", params.Component{Key: "nm"}))
	src, err := params.New(other, params.Source{}, params.Values{"name": "x"})
	if err != nil {
		t.Fatalf("new other: %v", err)
	}

	bag := newProduct(t, params.Source{}, nil)
	if err := bag.Update(params.FromBag(src), nil); !errors.Is(err, params.ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
}

func TestBag_UpdateMapClearsWithNil(t *testing.T) {
	bag := newProduct(t, params.Source{}, params.Values{"name": "widget", "brand": "acme"})

	if err := bag.Update(params.FromMap(map[string]any{"brand": nil}), params.Values{"name": nil}); err != nil {
		t.Fatalf("update: %v", err)
	}
	want := map[string]any{"nm": "widget"}
	if diff := cmp.Diff(want, bag.Params()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBag_UpdateUnknownKeyFails(t *testing.T) {
	bag := newProduct(t, params.Source{}, nil)
	err := bag.Update(params.FromMap(map[string]any{"unknown": "x"}), nil)
	if !errors.Is(err, params.ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
	if err.Error() != "params: invalid field name 'unknown'" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestBag_Validate(t *testing.T) {
	bag := newProduct(t, params.Source{}, nil)

	err := bag.Validate()
	var missing *params.MissingRequiredError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRequiredError, got %v", err)
	}
	if diff := cmp.Diff([]string{"name"}, missing.Fields); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}
	if err.Error() != "params: parameters are required, but missing: name" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	if err := bag.Set("name", "widget"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := bag.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBag_ValidateListsAllMissing(t *testing.T) {
	s := params.Define("Order", params.URLGenerator,
		params.Field("id", params.Component{Key: "ti", Required: true}),
		params.Field("revenue", params.Component{Key: "tr", Required: true}),
		params.Field("tax", params.Component{Key: "tt"}),
	)
	bag, err := params.New(s, params.Source{}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var missing *params.MissingRequiredError
	if !errors.As(bag.Validate(), &missing) {
		t.Fatalf("expected MissingRequiredError")
	}
	if diff := cmp.Diff([]string{"id", "revenue"}, missing.Fields); diff != "" {
		t.Fatalf("missing fields mismatch (-want +got):\n%s", diff)
	}
}

func TestBag_CopyIsIndependent(t *testing.T) {
	bag := newProduct(t, params.Source{}, params.Values{"name": "widget", "color": "red"})
	dup := bag.Copy()

	if dup.String() != bag.String() {
		t.Fatalf("copy describe mismatch: %s vs %s", dup, bag)
	}
	_ = dup.Set("name", "gadget")
	_ = dup.Delete("color")
	if bag.Get("name") != "widget" || bag.Get("color") != "red" {
		t.Fatalf("original mutated through copy: %s", bag)
	}
}

func TestBag_String(t *testing.T) {
	bag := newProduct(t, params.Source{}, params.Values{"color": "red", "name": "widget", "brand": 3})
	want := `<Product: name="widget", brand=3, color="red">`
	if got := bag.String(); got != want {
		t.Fatalf("describe = %s, want %s", got, want)
	}
}

func TestBag_StringIncludesKeysCopiedFromDescendant(t *testing.T) {
	base := params.Define("Listing", params.URLGenerator,
		params.Field("name", params.Component{Key: "nm"}),
	)
	child := params.Define("PricedListing", base,
		params.Field("price", params.Component{Key: "pr"}),
	)
	src, err := params.New(child, params.Source{}, params.Values{"name": "w", "price": 10})
	if err != nil {
		t.Fatalf("new child: %v", err)
	}

	bag, err := params.New(base, params.FromBag(src), nil)
	if err != nil {
		t.Fatalf("new base: %v", err)
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
	want := `<Listing: name="w", pr=10>`
	if got := bag.String(); got != want {
		t.Fatalf("describe = %s, want %s", got, want)
	}
}
