package scope_test

import (
	"testing"

	"github.com/slugc/slug/internal/scope"
)

func TestDeclareAndLookup(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", scope.Binding{Mut: true})

	b, ok := s.Lookup("x")
	if !ok {
		t.Fatal("expected to find x")
	}
	if !b.Mut {
		t.Error("expected Mut true")
	}
}

func TestLookupMissing(t *testing.T) {
	s := scope.NewStack()
	_, ok := s.Lookup("nope")
	if ok {
		t.Error("expected lookup to fail for undeclared name")
	}
}

func TestShadowingInNestedScope(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", scope.Binding{Mut: false})

	s.Push()
	s.Declare("x", scope.Binding{Mut: true})

	b, ok := s.Lookup("x")
	if !ok || !b.Mut {
		t.Fatal("expected inner shadowing binding to win")
	}

	s.Pop()
	b, ok = s.Lookup("x")
	if !ok || b.Mut {
		t.Fatal("expected outer binding to reappear after pop")
	}
}

func TestLastWriterWinsWithinSameScope(t *testing.T) {
	s := scope.NewStack()
	s.Declare("x", scope.Binding{Mut: false})
	s.Declare("x", scope.Binding{Mut: true})

	b, _ := s.Lookup("x")
	if !b.Mut {
		t.Error("expected second declaration to overwrite the first")
	}
}

func TestDeclareGlobalFromNestedScope(t *testing.T) {
	s := scope.NewStack()
	s.Push()
	s.Push()
	s.DeclareGlobal("g", scope.Binding{})
	s.Pop()
	s.Pop()

	if _, ok := s.Lookup("g"); !ok {
		t.Error("expected global binding to remain after popping nested scopes")
	}
}

func TestDepth(t *testing.T) {
	s := scope.NewStack()
	if s.Depth() != 1 {
		t.Fatalf("expected initial depth 1, got %d", s.Depth())
	}
	s.Push()
	s.Push()
	if s.Depth() != 3 {
		t.Fatalf("expected depth 3 after two pushes, got %d", s.Depth())
	}
	s.Pop()
	if s.Depth() != 2 {
		t.Fatalf("expected depth 2 after one pop, got %d", s.Depth())
	}
}
