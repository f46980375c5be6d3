package memory_test

import (
	"testing"

	"todotui/internal/store"
	"todotui/internal/store/memory"
	"todotui/internal/store/storetest"
)

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return memory.New()
	})
}

func TestIDsAreMonotonic(t *testing.T) {
	s := memory.New()

	// IDs keep climbing even when earlier tasks are removed, so an ID is
	// never reused within a session
	a, err := s.Add("A")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	b, err := s.Add("B")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if b.ID <= a.ID {
		t.Errorf("expected ID after %d, got %d", a.ID, b.ID)
	}
}

func TestClearThenAdd(t *testing.T) {
	s := memory.New()

	if _, err := s.Add("A"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	task, err := s.Add("B")
	if err != nil {
		t.Fatalf("Add after clear: %v", err)
	}

	tasks, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID || tasks[0].Title != "B" {
		t.Errorf("unexpected contents after clear+add: %+v", tasks)
	}
}
