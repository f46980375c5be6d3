package store_test

import (
	"strings"
	"testing"

	"todotui/internal/store"
	_ "todotui/internal/store/memory"
	_ "todotui/internal/store/sqlite"
)

type stubStore struct {
	store.Notifier
}

func (s *stubStore) List() ([]store.Task, error) { return nil, nil }

func (s *stubStore) Add(string) (store.Task, error) { return store.Task{}, nil }

func (s *stubStore) Toggle(int64) error { return nil }

func (s *stubStore) Remove(int64) error { return nil }

func (s *stubStore) Clear() error { return nil }

func (s *stubStore) Close() error { return nil }

func stubFactory() (store.Store, error) {
	return &stubStore{}, nil
}

func TestRegistry_Register(t *testing.T) {
	r := store.NewRegistry()

	if err := r.Register("stub", stubFactory); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register("stub", stubFactory); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegistry_CreateUnknown(t *testing.T) {
	r := store.NewRegistry()

	_, err := r.Create("nosuch")
	if err == nil {
		t.Fatal("expected error for unregistered backend")
	}
	if !strings.Contains(err.Error(), "nosuch") {
		t.Errorf("error should name the backend: %v", err)
	}
}

func TestRegistry_Create(t *testing.T) {
	r := store.NewRegistry()
	if err := r.Register("stub", stubFactory); err != nil {
		t.Fatalf("Register: %v", err)
	}

	s, err := r.Create("stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := s.(*stubStore); !ok {
		t.Errorf("expected *stubStore, got %T", s)
	}
}

func TestRegistry_List(t *testing.T) {
	r := store.NewRegistry()
	if err := r.Register("stub", stubFactory); err != nil {
		t.Fatalf("Register: %v", err)
	}

	names := r.List()
	if len(names) != 1 || names[0] != "stub" {
		t.Errorf("expected [stub], got %v", names)
	}
}

func TestDefaultRegistryHasBackends(t *testing.T) {
	// Importing the backend packages registers them globally
	want := map[string]bool{"memory": false, "sqlite": false}
	for _, name := range store.Backends() {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("backend %s not registered", name)
		}
	}
}

func TestCreateDefaultsToMemory(t *testing.T) {
	s, err := store.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer s.Close()

	if _, err := s.Add("A"); err != nil {
		t.Fatalf("Add on default backend: %v", err)
	}
}
