package pragma

import (
	"errors"
	"testing"

	"github.com/perky-format/go-perky/ir"
)

func TestLetMapping(t *testing.T) {
	ctx := &fakeContext{kind: ir.MappingType}
	h := NewLet(map[string]any{"base": 3})
	if err := h.Handle(ctx, []string{"replicas base * 2"}); err != nil {
		t.Fatal(err)
	}
	v := ctx.mapping["replicas"]
	if v == nil || v.String != "6" {
		t.Errorf("got %v", v)
	}
}

func TestLetSequence(t *testing.T) {
	ctx := &fakeContext{kind: ir.SequenceType}
	if err := NewLet(nil).Handle(ctx, []string{`"a" + "b"`}); err != nil {
		t.Fatal(err)
	}
	if len(ctx.appended) != 1 || ctx.appended[0].String != "ab" {
		t.Errorf("got %v", ctx.appended)
	}
}

func TestLetErrs(t *testing.T) {
	ctx := &fakeContext{kind: ir.MappingType}
	h := NewLet(nil)
	if err := h.Handle(ctx, []string{"keyonly"}); !errors.Is(err, ErrArgs) {
		t.Errorf("missing expression: got %v", err)
	}
	if err := h.Handle(ctx, []string{"k )(bad syntax"}); !errors.Is(err, ErrArgs) {
		t.Errorf("bad syntax: got %v", err)
	}
	if err := h.Handle(ctx, nil); !errors.Is(err, ErrArgs) {
		t.Errorf("no args: got %v", err)
	}
}
