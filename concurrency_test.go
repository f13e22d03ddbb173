// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sharp_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/sharp"
)

// All goroutines block on the start channel and are released together to
// maximize contention on the counter.

func TestContendedCloneRelease(t *testing.T) {
	const goroutines, iterations = 100, 10000

	before := alive()
	s := sharp.NewWith(newTracked(), finalizeTracked)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range iterations {
				s.Clone().Reset()
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := s.UseCount(); got != 1 {
		t.Fatalf("UseCount = %d, want 1 (lost or leaked counter traffic)", got)
	}
	if got := alive() - before; got != 1 {
		t.Fatalf("alive delta = %d, want 1", got)
	}
	s.Reset()
	if got := alive() - before; got != 0 {
		t.Fatalf("alive delta after final reset = %d, want 0", got)
	}
}

func TestContendedFinalRelease(t *testing.T) {
	const goroutines = 128
	const rounds = 100

	before := alive()
	for range rounds {
		runs := 0
		s := sharp.NewWith(newTracked(), func(v *tracked) {
			finalizeTracked(v)
			runs++ // only the single finalizing goroutine writes this
		})

		clones := make([]*sharp.Shared[tracked], goroutines)
		for i := range clones {
			clones[i] = s.Clone()
		}
		s.Reset()

		// Every remaining owner releases at once: exactly one of the racing
		// decrements may observe zero.
		start := make(chan struct{})
		var wg sync.WaitGroup
		for _, c := range clones {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				c.Reset()
			}()
		}
		close(start)
		wg.Wait()

		if runs != 1 {
			t.Fatalf("finalizer ran %d times, want 1", runs)
		}
	}
	if got := alive() - before; got != 0 {
		t.Fatalf("alive delta = %d, want 0", got)
	}
}

func TestContendedMixedOwnership(t *testing.T) {
	const goroutines, iterations = 64, 2000

	before := alive()
	s := sharp.NewWith(newTracked(), finalizeTracked)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range iterations {
				a := s.Clone()
				b := s.Clone()
				sharp.Swap(a, b)
				m := a.Move()
				v := b.MoveToView()
				m.Reset()
				v.Reset()
				a.Reset() // emptied by Move: no-op
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := s.UseCount(); got != 1 {
		t.Fatalf("UseCount = %d, want 1", got)
	}
	if got := alive() - before; got != 1 {
		t.Fatalf("alive delta = %d, want 1", got)
	}
	s.Reset()
	if got := alive() - before; got != 0 {
		t.Fatalf("alive delta after final reset = %d, want 0", got)
	}
}

func TestContendedViewTraffic(t *testing.T) {
	const goroutines, iterations = 64, 5000

	s := sharp.New(&tracked{id: 3})

	start := make(chan struct{})
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for range iterations {
				v := s.ToView()
				if got := v.Value().id; got != 3 {
					t.Errorf("view observed id = %d, want 3", got)
					return
				}
				v.Reset()
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := s.UseCount(); got != 1 {
		t.Fatalf("UseCount = %d, want 1", got)
	}
	s.Reset()
}
