package app

import (
	"sync"
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	var clock SystemClock

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockClock(t *testing.T) {
	mock := NewMockClock(testStart, 0)

	if now := mock.Now(); !now.Equal(testStart) {
		t.Errorf("Expected initial time to be %v, got %v", testStart, now)
	}
	if now := mock.Now(); !now.Equal(testStart) {
		t.Errorf("Expected frozen time %v, got %v", testStart, now)
	}

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	expected := testStart.Add(90 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestMockClockStep(t *testing.T) {
	mock := NewMockClock(testStart, time.Millisecond)

	for i := 0; i < 3; i++ {
		want := testStart.Add(time.Duration(i) * time.Millisecond)
		if now := mock.Now(); !now.Equal(want) {
			t.Errorf("Read %d: expected %v, got %v", i, want, now)
		}
	}

	mock.SetStep(0)
	a, b := mock.Now(), mock.Now()
	if !a.Equal(b) {
		t.Errorf("Expected frozen clock after SetStep(0), got %v then %v", a, b)
	}
}

func TestMockClockConcurrency(t *testing.T) {
	mock := NewMockClock(testStart, time.Microsecond)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	// 1000 reads at 1µs plus 1000 advances at 1ms
	expected := testStart.Add(1000*time.Microsecond + 1000*time.Millisecond)
	mock.SetStep(0)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected %v after concurrent use, got %v", expected, now)
	}
}
