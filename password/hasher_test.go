package password_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/hasbyte1/go-password/hashing"
	"github.com/hasbyte1/go-password/password"
)

func newTestHasher(t *testing.T, workFactor int) *password.Hasher {
	t.Helper()
	h, err := password.NewHasher(password.Config{WorkFactor: workFactor})
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}
	return h
}

// stubDriver is a hashing.Hasher that records calls and never derives.
type stubDriver struct {
	made    []int
	checkOK bool
	err     error
}

func (s *stubDriver) Make(password string, workFactor int) (string, error) {
	s.made = append(s.made, workFactor)
	return "stub:" + password, s.err
}

func (s *stubDriver) Check(password, hash string) (bool, error) { return s.checkOK, s.err }

func (s *stubDriver) NeedsRehash(hash string, workFactor int) (bool, error) { return false, s.err }

func (s *stubDriver) Info(hash string) (hashing.HashInfo, error) {
	return hashing.HashInfo{Driver: "stub", Params: map[string]any{}}, s.err
}

func (s *stubDriver) Driver() hashing.DriverName { return "stub" }

// ──────────────────────────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────────────────────────

func TestNewHasher_InvalidWorkFactor(t *testing.T) {
	for _, wf := range []int{-1, hashing.MaxWorkFactor + 1} {
		_, err := password.NewHasher(password.Config{WorkFactor: wf})
		if !errors.Is(err, hashing.ErrInvalidOption) {
			t.Errorf("work factor %d: expected ErrInvalidOption, got %v", wf, err)
		}
	}
}

func TestNewHasherWithDriver_NilDriver(t *testing.T) {
	_, err := password.NewHasherWithDriver(password.DefaultConfig(), nil)
	if !errors.Is(err, hashing.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption, got %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	if got := password.DefaultConfig().WorkFactor; got != hashing.DefaultWorkFactor {
		t.Errorf("DefaultConfig().WorkFactor = %d, want %d", got, hashing.DefaultWorkFactor)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Work factor selection
// ──────────────────────────────────────────────────────────────────────────────

func TestHasher_PinnedWorkFactor_IgnoresDefault(t *testing.T) {
	h := newTestHasher(t, 5)
	setDefaultWorkFactor(t, 7)

	if got := h.WorkFactor(); got != 5 {
		t.Errorf("WorkFactor = %d, want 5", got)
	}
	p, err := h.Hash("pw")
	if err != nil {
		t.Fatal(err)
	}
	if wf, _ := p.WorkFactor(); wf != 5 {
		t.Errorf("embedded work factor = %d, want 5", wf)
	}
}

func TestHasher_ZeroWorkFactor_FollowsDefault(t *testing.T) {
	h := newTestHasher(t, 0)
	setDefaultWorkFactor(t, 3)
	if got := h.WorkFactor(); got != 3 {
		t.Errorf("WorkFactor = %d, want 3", got)
	}
	setDefaultWorkFactor(t, 6)
	if got := h.WorkFactor(); got != 6 {
		t.Errorf("WorkFactor after change = %d, want 6", got)
	}
}

func TestHasher_HashWithWorkFactor(t *testing.T) {
	stub := &stubDriver{}
	h, _ := password.NewHasherWithDriver(password.Config{WorkFactor: 9}, stub)
	_, _ = h.Hash("a")
	_, _ = h.HashWithWorkFactor("b", 11)
	_, _ = h.Hash("c")
	want := []int{9, 11, 9}
	if len(stub.made) != len(want) {
		t.Fatalf("Make calls = %v, want %v", stub.made, want)
	}
	for i := range want {
		if stub.made[i] != want[i] {
			t.Errorf("Make call %d used work factor %d, want %d", i, stub.made[i], want[i])
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Error mapping
// ──────────────────────────────────────────────────────────────────────────────

func TestHasher_DriverErrors(t *testing.T) {
	boom := errors.New("boom")
	h, _ := password.NewHasherWithDriver(password.DefaultConfig(), &stubDriver{err: boom})

	if _, err := h.Hash("pw"); !errors.Is(err, password.ErrHashing) || !errors.Is(err, boom) {
		t.Errorf("Hash: expected ErrHashing wrapping boom, got %v", err)
	}
	if _, err := h.Match(password.New("x"), "pw"); !errors.Is(err, password.ErrMalformedHash) || !errors.Is(err, boom) {
		t.Errorf("Match: expected ErrMalformedHash wrapping boom, got %v", err)
	}
	if _, err := h.NeedsRehash(password.New("x")); !errors.Is(err, password.ErrMalformedHash) {
		t.Errorf("NeedsRehash: expected ErrMalformedHash, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Match / NeedsRehash
// ──────────────────────────────────────────────────────────────────────────────

func TestHasher_Match(t *testing.T) {
	h := newTestHasher(t, testWorkFactor)
	p, _ := h.Hash("secret")
	if ok, err := h.Match(p, "secret"); err != nil || !ok {
		t.Errorf("correct: ok=%v err=%v", ok, err)
	}
	if ok, err := h.Match(p, "nope"); err != nil || ok {
		t.Errorf("wrong: ok=%v err=%v", ok, err)
	}
}

func TestHasher_NeedsRehash_AfterPolicyChange(t *testing.T) {
	old := newTestHasher(t, 3)
	p, _ := old.Hash("pw")

	current := newTestHasher(t, 5)
	needs, err := current.NeedsRehash(p)
	if err != nil || !needs {
		t.Fatalf("expected rehash after policy change: needs=%v err=%v", needs, err)
	}
	upgraded, _ := current.Hash("pw")
	if needs, _ := current.NeedsRehash(upgraded); needs {
		t.Error("freshly hashed password should not need a rehash")
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := newTestHasher(t, testWorkFactor)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := h.Hash("pw")
			if err != nil {
				t.Error(err)
				return
			}
			if ok, err := h.Match(p, "pw"); err != nil || !ok {
				t.Errorf("round-trip: ok=%v err=%v", ok, err)
			}
		}()
	}
	wg.Wait()
}
