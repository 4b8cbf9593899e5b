package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests up to the limit", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("10.0.0.1") {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
		if rl.allow("10.0.0.1") {
			t.Error("request past the limit should be rejected")
		}
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first key should be allowed")
		}
		if !rl.allow("10.0.0.2") {
			t.Error("second key must have its own window")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Fatal("first request should be allowed")
		}
		if rl.allow("10.0.0.1") {
			t.Fatal("second request should be rejected")
		}

		time.Sleep(20 * time.Millisecond)

		if !rl.allow("10.0.0.1") {
			t.Error("request after the window should be allowed")
		}
	})

	t.Run("reset clears all state", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)
		rl.allow("10.0.0.1")
		rl.Reset()

		if !rl.allow("10.0.0.1") {
			t.Error("request after reset should be allowed")
		}
	})

	t.Run("cleanup drops expired entries only", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)
		rl.allow("expired")

		time.Sleep(20 * time.Millisecond)
		rl.allow("fresh")
		rl.Cleanup()

		rl.mu.Lock()
		_, expiredKept := rl.entries["expired"]
		_, freshKept := rl.entries["fresh"]
		rl.mu.Unlock()

		if expiredKept {
			t.Error("expired entry should be removed")
		}
		if !freshKept {
			t.Error("fresh entry should be kept")
		}
	})
}
