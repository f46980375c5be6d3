// Package storetest provides a conformance suite for store backends.
// Every backend's own test file runs Run against its factory so the
// behavioral contract stays identical across implementations.
package storetest

import (
	"errors"
	"testing"

	"todotui/internal/store"
)

// Factory creates a fresh, empty store for one test
type Factory func(t *testing.T) store.Store

// Run exercises the full Store contract against the given backend
func Run(t *testing.T, newStore Factory) {
	t.Run("AddAppends", func(t *testing.T) { testAddAppends(t, newStore) })
	t.Run("AddRejectsEmptyTitle", func(t *testing.T) { testAddRejectsEmptyTitle(t, newStore) })
	t.Run("AddPermitsDuplicateTitles", func(t *testing.T) { testAddPermitsDuplicateTitles(t, newStore) })
	t.Run("ToggleFlipsOnlyTarget", func(t *testing.T) { testToggleFlipsOnlyTarget(t, newStore) })
	t.Run("ToggleTwiceRestores", func(t *testing.T) { testToggleTwiceRestores(t, newStore) })
	t.Run("ToggleUnknownID", func(t *testing.T) { testToggleUnknownID(t, newStore) })
	t.Run("RemoveKeepsOrder", func(t *testing.T) { testRemoveKeepsOrder(t, newStore) })
	t.Run("RemoveUnknownID", func(t *testing.T) { testRemoveUnknownID(t, newStore) })
	t.Run("IDsStableAcrossRemove", func(t *testing.T) { testIDsStableAcrossRemove(t, newStore) })
	t.Run("Clear", func(t *testing.T) { testClear(t, newStore) })
	t.Run("ClearWhenEmpty", func(t *testing.T) { testClearWhenEmpty(t, newStore) })
	t.Run("ListIsSnapshot", func(t *testing.T) { testListIsSnapshot(t, newStore) })
	t.Run("NotifiesOnMutation", func(t *testing.T) { testNotifiesOnMutation(t, newStore) })
	t.Run("NoNotifyOnRejectedAdd", func(t *testing.T) { testNoNotifyOnRejectedAdd(t, newStore) })
}

// seed adds the given titles and returns the resulting tasks
func seed(t *testing.T, s store.Store, titles ...string) []store.Task {
	t.Helper()
	for _, title := range titles {
		if _, err := s.Add(title); err != nil {
			t.Fatalf("seeding %q: %v", title, err)
		}
	}
	return list(t, s)
}

// list returns the current tasks, failing the test on error
func list(t *testing.T, s store.Store) []store.Task {
	t.Helper()
	tasks, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	return tasks
}

func titles(tasks []store.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func equalTitles(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func testAddAppends(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	task, err := s.Add("Buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if task.Title != "Buy milk" {
		t.Errorf("expected title %q, got %q", "Buy milk", task.Title)
	}
	if task.Done {
		t.Error("new task should not be done")
	}

	tasks := list(t, s)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != task.ID || tasks[0].Title != "Buy milk" || tasks[0].Done {
		t.Errorf("unexpected stored task: %+v", tasks[0])
	}

	// A second add lands at the end
	second, err := s.Add("Walk dog")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	tasks = list(t, s)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].ID != second.ID || tasks[1].Title != "Walk dog" {
		t.Errorf("expected %q appended last, got %+v", "Walk dog", tasks[1])
	}
}

func testAddRejectsEmptyTitle(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	seed(t, s, "Buy milk")
	before := list(t, s)

	_, err := s.Add("")
	if !errors.Is(err, store.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}

	after := list(t, s)
	if !equalTitles(titles(before), titles(after)) {
		t.Errorf("rejected add changed contents: before %v, after %v", titles(before), titles(after))
	}
}

func testAddPermitsDuplicateTitles(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	a, err := s.Add("Buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	b, err := s.Add("Buy milk")
	if err != nil {
		t.Fatalf("Add duplicate: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("duplicate titles must get distinct IDs, both got %d", a.ID)
	}
	if got := len(list(t, s)); got != 2 {
		t.Errorf("expected 2 tasks, got %d", got)
	}
}

func testToggleFlipsOnlyTarget(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	tasks := seed(t, s, "Buy milk", "Walk dog")
	if err := s.Toggle(tasks[0].ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	after := list(t, s)
	if !after[0].Done {
		t.Error("toggled task should be done")
	}
	if after[1].Done {
		t.Error("untouched task should not be done")
	}
	if after[0].Title != "Buy milk" || after[1].Title != "Walk dog" {
		t.Errorf("toggle changed titles or order: %v", titles(after))
	}
	if len(after) != 2 {
		t.Errorf("toggle changed length: %d", len(after))
	}
}

func testToggleTwiceRestores(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	tasks := seed(t, s, "Buy milk")
	for i := 0; i < 2; i++ {
		if err := s.Toggle(tasks[0].ID); err != nil {
			t.Fatalf("Toggle %d: %v", i+1, err)
		}
	}

	after := list(t, s)
	if after[0].Done {
		t.Error("double toggle should restore done=false")
	}
}

func testToggleUnknownID(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	seed(t, s, "Buy milk")
	if err := s.Toggle(999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func testRemoveKeepsOrder(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	tasks := seed(t, s, "A", "B", "C")
	if err := s.Remove(tasks[1].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	after := list(t, s)
	want := []string{"A", "C"}
	if !equalTitles(titles(after), want) {
		t.Errorf("expected %v after removal, got %v", want, titles(after))
	}
}

func testRemoveUnknownID(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	tasks := seed(t, s, "A")
	if err := s.Remove(tasks[0].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// Removing the same task again reports the miss instead of corrupting state
	if err := s.Remove(tasks[0].ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double remove, got %v", err)
	}
	if got := len(list(t, s)); got != 0 {
		t.Errorf("expected empty store, got %d tasks", got)
	}
}

func testIDsStableAcrossRemove(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	tasks := seed(t, s, "A", "B", "C")
	if err := s.Remove(tasks[0].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// B and C keep the IDs they were created with
	after := list(t, s)
	if after[0].ID != tasks[1].ID || after[1].ID != tasks[2].ID {
		t.Errorf("IDs shifted after removal: seeded %v %v, got %v %v",
			tasks[1].ID, tasks[2].ID, after[0].ID, after[1].ID)
	}

	// A toggle addressed by the old ID still hits the right task
	if err := s.Toggle(tasks[2].ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	after = list(t, s)
	if !after[1].Done || after[1].Title != "C" {
		t.Errorf("toggle by stable ID hit the wrong task: %+v", after)
	}
}

func testClear(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	seed(t, s, "A", "B", "C")
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := len(list(t, s)); got != 0 {
		t.Errorf("expected empty store after clear, got %d tasks", got)
	}
}

func testClearWhenEmpty(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
	if got := len(list(t, s)); got != 0 {
		t.Errorf("expected empty store, got %d tasks", got)
	}
}

func testListIsSnapshot(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	seed(t, s, "A", "B")
	snapshot := list(t, s)
	snapshot[0].Title = "mutated"
	snapshot[0].Done = true

	after := list(t, s)
	if after[0].Title != "A" || after[0].Done {
		t.Errorf("mutating a List result leaked into the store: %+v", after[0])
	}
}

func testNotifiesOnMutation(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	var notified int
	s.Subscribe(func() { notified++ })

	task, err := s.Add("A")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Toggle(task.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := s.Remove(task.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if notified != 4 {
		t.Errorf("expected 4 notifications, got %d", notified)
	}
}

func testNoNotifyOnRejectedAdd(t *testing.T, newStore Factory) {
	s := newStore(t)
	defer s.Close()

	var notified int
	s.Subscribe(func() { notified++ })

	if _, err := s.Add(""); !errors.Is(err, store.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := s.Toggle(999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if notified != 0 {
		t.Errorf("rejected operations must not notify, got %d notifications", notified)
	}
}
