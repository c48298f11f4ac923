package autoplay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/thermoviz/internal/thermo"
)

func TestRunner_StopsAtBound(t *testing.T) {
	var mu sync.Mutex
	var temps []float64
	r := NewRunner(NewSequence(145, 2, false), time.Millisecond, func(s Sequence) {
		mu.Lock()
		temps = append(temps, s.Temp)
		mu.Unlock()
	})
	r.Start(context.Background())

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []float64{147, 149, 150}
	if len(temps) != len(want) {
		t.Fatalf("ticks = %v, want %v", temps, want)
	}
	for i := range want {
		if temps[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, temps[i], want[i])
		}
	}
	if r.Current().Temp != thermo.MaxTemp {
		t.Errorf("Current = %v", r.Current().Temp)
	}
	r.Stop()
}

func TestRunner_StopIsIdempotent(t *testing.T) {
	r := NewRunner(NewSequence(0, 0.5, false), time.Hour, nil)
	r.Start(context.Background())
	r.Stop()
	r.Stop()

	select {
	case <-r.Done():
	default:
		t.Fatal("Done should be closed after Stop")
	}
	if r.Current().Temp != 0 {
		t.Errorf("no tick should have happened, temp = %v", r.Current().Temp)
	}
}

func TestRunner_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(NewSequence(0, 1, true), time.Hour, nil)
	r.Start(ctx)
	cancel()

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner ignored cancellation")
	}
}

func TestRunner_StopBeforeStart(t *testing.T) {
	r := NewRunner(NewSequence(0, 1, false), 0, nil)
	r.Stop()
	r.Start(context.Background())
	<-r.Done()
}

func TestRunner_AlreadyAtBound(t *testing.T) {
	r := NewRunner(NewSequence(thermo.MinTemp, 1, true), time.Millisecond, func(Sequence) {
		t.Error("no tick expected")
	})
	r.Start(context.Background())
	<-r.Done()
	r.Stop()
}

func TestRunner_ReleasesContextAtBound(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRunner(NewSequence(148, 2, false), time.Millisecond, nil)
	r.Start(parent)

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not finish")
	}
	if r.ctx.Err() == nil {
		t.Error("derived context still live after reaching the bound")
	}
	if parent.Err() != nil {
		t.Error("parent context should be untouched")
	}

	stopped := make(chan struct{})
	go func() {
		r.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after the runner finished")
	}
}
