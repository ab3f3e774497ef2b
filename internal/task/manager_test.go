package task

import (
	"errors"
	"sync"
	"testing"
)

func TestGetTaskReturnsSnapshot(t *testing.T) {
	m := NewManager()
	created := m.NewTask()

	before, err := m.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}

	if err := m.SetResult(created.ID, "done"); err != nil {
		t.Fatalf("SetResult: %v", err)
	}

	// The earlier snapshot must not see the update.
	if before.Status != StatusPending || before.Result != nil {
		t.Errorf("snapshot changed after SetResult: status=%s result=%v", before.Status, before.Result)
	}

	after, err := m.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if after.Status != StatusCompleted || after.Result != "done" {
		t.Errorf("fresh lookup = status %s result %v, want completed/done", after.Status, after.Result)
	}
}

func TestConcurrentPollingWhileUpdating(t *testing.T) {
	// Readers poll the task while a worker goroutine walks it through its
	// lifecycle; run with the race detector enabled.
	m := NewManager()
	created := m.NewTask()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if err := m.UpdateStatus(created.ID, StatusProcessing); err != nil {
				t.Errorf("UpdateStatus: %v", err)
				return
			}
			if err := m.SetResult(created.ID, i); err != nil {
				t.Errorf("SetResult: %v", err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			snapshot, err := m.GetTask(created.ID)
			if err != nil {
				t.Errorf("GetTask: %v", err)
				return
			}
			if snapshot.Status != StatusPending && snapshot.Status != StatusProcessing && snapshot.Status != StatusCompleted {
				t.Errorf("unexpected status %s", snapshot.Status)
				return
			}
			_ = snapshot.Result
			_ = snapshot.Error
		}
	}()

	wg.Wait()
}

func TestSetError(t *testing.T) {
	m := NewManager()
	created := m.NewTask()

	if err := m.SetError(created.ID, errors.New("boom")); err != nil {
		t.Fatalf("SetError: %v", err)
	}

	got, err := m.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Status != StatusFailed {
		t.Errorf("status = %s, want %s", got.Status, StatusFailed)
	}
	if got.Error != "boom" {
		t.Errorf("error = %q, want boom", got.Error)
	}

	if err := m.SetError("ghost", errors.New("x")); err == nil {
		t.Error("expected error for unknown task id")
	}
}

func TestGetTaskUnknownID(t *testing.T) {
	m := NewManager()
	if _, err := m.GetTask("missing"); err == nil {
		t.Error("expected error for missing task")
	}
}
