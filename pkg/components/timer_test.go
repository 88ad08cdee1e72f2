package components

import "testing"

func TestTimerFiresOnceAfterDuration(t *testing.T) {
	fired := 0
	timer := NewTimer(0.35, func() { fired++ })
	timer.Activate()

	for i := 0; i < 3; i++ {
		if timer.Update(0.1) {
			t.Fatalf("fired early at step %d", i)
		}
	}
	if !timer.Update(0.1) {
		t.Fatal("expected timer to fire after 0.4s")
	}
	if timer.Active() {
		t.Error("timer must be inactive after firing")
	}
	if fired != 1 {
		t.Errorf("callback ran %d times, want 1", fired)
	}

	// 不再运行，不会重复触发
	for i := 0; i < 10; i++ {
		timer.Update(0.1)
	}
	if fired != 1 {
		t.Errorf("callback ran %d times after completion, want 1", fired)
	}
}

func TestTimerDeactivateSuppressesCallback(t *testing.T) {
	fired := false
	timer := NewTimer(0.2, func() { fired = true })
	timer.Activate()
	timer.Update(0.1)
	timer.Deactivate()

	for i := 0; i < 5; i++ {
		timer.Update(0.1)
	}
	if fired {
		t.Error("deactivated timer must never fire")
	}
}

func TestTimerCannotRearmInFiringFrame(t *testing.T) {
	timer := NewTimer(0.2, nil)
	timer.Activate()
	if !timer.Update(0.3) {
		t.Fatal("expected fire")
	}

	timer.Activate()
	if timer.Active() {
		t.Fatal("timer re-armed in the frame it fired")
	}
	if !timer.JustFired() {
		t.Error("JustFired should be true until the next update")
	}

	// 下一帧可以重新激活
	timer.Update(0.01)
	timer.Activate()
	if !timer.Active() {
		t.Error("timer should re-arm on a later frame")
	}
}

func TestTimerCallbackMayCheckState(t *testing.T) {
	var timer *Timer
	sawActive := true
	timer = NewTimer(0.1, func() { sawActive = timer.Active() })
	timer.Activate()
	timer.Update(0.1)

	if sawActive {
		t.Error("timer must be deactivated before its callback runs")
	}
}

func TestTimerActivateRestarts(t *testing.T) {
	timer := NewTimer(0.3, nil)
	timer.Activate()
	timer.Update(0.2)
	timer.Update(0)
	timer.Activate()
	if timer.Elapsed() != 0 {
		t.Errorf("elapsed = %.2f after restart, want 0", timer.Elapsed())
	}
	if timer.Update(0.2) {
		t.Error("restarted timer fired too early")
	}
}
