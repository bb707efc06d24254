package pragma

import (
	"errors"
	"testing"

	"github.com/perky-format/go-perky/ir"
)

func TestOSEnvMapping(t *testing.T) {
	t.Setenv("PERKY_TEST_VAR", "hello")
	ctx := &fakeContext{kind: ir.MappingType}
	h := NewOSEnv()
	if err := h.Handle(ctx, []string{"PERKY_TEST_VAR"}); err != nil {
		t.Fatal(err)
	}
	v := ctx.mapping["PERKY_TEST_VAR"]
	if v == nil || v.String != "hello" {
		t.Errorf("got %v", v)
	}
}

func TestOSEnvSequence(t *testing.T) {
	t.Setenv("PERKY_TEST_VAR", "elem")
	ctx := &fakeContext{kind: ir.SequenceType}
	if err := NewOSEnv().Handle(ctx, []string{"PERKY_TEST_VAR"}); err != nil {
		t.Fatal(err)
	}
	if len(ctx.appended) != 1 || ctx.appended[0].String != "elem" {
		t.Errorf("got %v", ctx.appended)
	}
}

func TestOSEnvUnset(t *testing.T) {
	ctx := &fakeContext{kind: ir.MappingType}
	if err := NewOSEnv().Handle(ctx, []string{"PERKY_SURELY_UNSET_VAR"}); err != nil {
		t.Fatal(err)
	}
	if v := ctx.mapping["PERKY_SURELY_UNSET_VAR"]; v == nil || v.String != "" {
		t.Errorf("got %v", v)
	}
}

func TestOSEnvArgs(t *testing.T) {
	ctx := &fakeContext{kind: ir.MappingType}
	if err := NewOSEnv().Handle(ctx, nil); !errors.Is(err, ErrArgs) {
		t.Errorf("got %v", err)
	}
}
