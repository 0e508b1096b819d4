package confidence

import (
	"testing"

	"token-promo-lab/internal/domain"
)

func factorsFromBits(bits int) domain.ConfidenceFactors {
	return domain.ConfidenceFactors{
		WebsiteFound: bits&1 != 0,
		OfficialLogo: bits&2 != 0,
		AllClipsOK:   bits&4 != 0,
		NoFallbacks:  bits&8 != 0,
	}
}

func countBits(bits int) int {
	n := 0
	for bits > 0 {
		n += bits & 1
		bits >>= 1
	}
	return n
}

// Score must equal clamp(count(true factors), 1, 4) for every combination.
func TestScore_AllCombinations(t *testing.T) {
	for bits := 0; bits < 16; bits++ {
		want := countBits(bits)
		if want < 1 {
			want = 1
		}
		got := Score(factorsFromBits(bits))
		if got != want {
			t.Errorf("Score(%04b) = %d, want %d", bits, got, want)
		}
	}
}

func TestScore_NeverBelowOne(t *testing.T) {
	if got := Score(domain.ConfidenceFactors{}); got != 1 {
		t.Errorf("Score with all factors false = %d, want 1", got)
	}
}

func TestScore_MaxFour(t *testing.T) {
	all := domain.ConfidenceFactors{WebsiteFound: true, OfficialLogo: true, AllClipsOK: true, NoFallbacks: true}
	if got := Score(all); got != 4 {
		t.Errorf("Score with all factors true = %d, want 4", got)
	}
}

// Flipping any single factor from false to true must never decrease the score.
func TestScore_MonotonicInEachFactor(t *testing.T) {
	for bits := 0; bits < 16; bits++ {
		base := Score(factorsFromBits(bits))
		for flip := 0; flip < 4; flip++ {
			mask := 1 << flip
			if bits&mask != 0 {
				continue
			}
			raised := Score(factorsFromBits(bits | mask))
			if raised < base {
				t.Errorf("Score decreased when flipping factor %d on %04b: %d -> %d", flip, bits, base, raised)
			}
		}
	}
}
