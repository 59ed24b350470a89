package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// BDD: Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 5; i++ {
		a := rng1.ForSubsystem(SubsystemReferences).Int63()
		b := rng2.ForSubsystem(SubsystemReferences).Int63()
		if a != b {
			t.Errorf("Value %d: got %v and %v, want identical", i, a, b)
		}
	}
}

func TestPartitionedRNG_ReferencesUsesMasterSeed(t *testing.T) {
	// BDD: the references subsystem draws exactly what rand.NewSource(seed) draws
	got := NewPartitionedRNG(NewSimulationKey(99)).ForSubsystem(SubsystemReferences).Int63()
	want := rand.New(rand.NewSource(99)).Int63()
	if got != want {
		t.Errorf("references subsystem: got %d, want %d", got, want)
	}
}

func TestPartitionedRNG_OtherSubsystemsAreIsolated(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))
	a := p.ForSubsystem(SubsystemReferences).Int63()
	b := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem("other").Int63()
	if a == b {
		t.Error("expected different streams for different subsystems")
	}
}

func TestPartitionedRNG_CachesInstances(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(1))
	if p.ForSubsystem(SubsystemReferences) != p.ForSubsystem(SubsystemReferences) {
		t.Error("expected the same *rand.Rand for repeated calls")
	}
	if p.Key() != NewSimulationKey(1) {
		t.Errorf("Key() = %d, want 1", p.Key())
	}
}

// === RandomReferenceStream Tests ===

func TestRandomReferenceStream_LengthAndRange(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(3)).ForSubsystem(SubsystemReferences)
	refs, err := RandomReferenceStream(rng, DefaultRandomLength, DefaultRandomMaxPage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != DefaultRandomLength {
		t.Fatalf("len = %d, want %d", len(refs), DefaultRandomLength)
	}
	for i, r := range refs {
		if r < 0 || r >= DefaultRandomMaxPage {
			t.Errorf("refs[%d] = %d out of [0, %d)", i, r, DefaultRandomMaxPage)
		}
	}
}

func TestRandomReferenceStream_SameSeedSameStream(t *testing.T) {
	gen := func() []int {
		rng := NewPartitionedRNG(NewSimulationKey(2024)).ForSubsystem(SubsystemReferences)
		refs, _ := RandomReferenceStream(rng, 50, 10)
		return refs
	}
	a, b := gen(), gen()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestRandomReferenceStream_InvalidArgs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := RandomReferenceStream(rng, -1, 10); err == nil {
		t.Error("expected error for negative length")
	}
	if _, err := RandomReferenceStream(rng, 5, 0); err == nil {
		t.Error("expected error for zero max page")
	}
	refs, err := RandomReferenceStream(rng, 0, 10)
	if err != nil || len(refs) != 0 {
		t.Errorf("expected empty stream, got %v, %v", refs, err)
	}
}
