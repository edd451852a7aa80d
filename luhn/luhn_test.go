package luhn

import "testing"

func TestChecksum_KnownSequences(t *testing.T) {
	cases := []struct {
		digits string
		check  int
	}{
		{"970214564", 1},
		{"811218987", 6},
		{"7992739871", 3},
		{"0", 0},
		{"18", 2},
	}
	for _, tc := range cases {
		got, err := Checksum(tc.digits)
		if err != nil {
			t.Fatalf("checksum %q: %v", tc.digits, err)
		}
		if got != tc.check {
			t.Fatalf("checksum %q: expected %d, got %d", tc.digits, tc.check, got)
		}
	}
}

func TestChecksum_RejectsBadInput(t *testing.T) {
	if _, err := Checksum(""); err == nil {
		t.Fatalf("expected error for empty sequence")
	}
	if _, err := Checksum("12a4"); err == nil {
		t.Fatalf("expected error for non-digit character")
	}
}

// referenceChecksum is an independent formulation used to cross-check the
// production implementation digit for digit.
func referenceChecksum(digits string) int {
	sum := 0
	parity := len(digits) % 2
	for i, c := range digits {
		v := int(c - '0')
		if i%2 != parity {
			v *= 2
			if v > 9 {
				v = v/10 + v%10
			}
		}
		sum += v
	}
	return (10 - sum%10) % 10
}

func TestChecksum_MatchesReference(t *testing.T) {
	seqs := []string{
		"970214564",
		"850615004",
		"121212121",
		"000000000",
		"999999999",
		"198203124",
		"640823323",
	}
	for _, seq := range seqs {
		got, err := Checksum(seq)
		if err != nil {
			t.Fatalf("checksum %q: %v", seq, err)
		}
		if want := referenceChecksum(seq); got != want {
			t.Fatalf("checksum %q: reference %d, got %d", seq, want, got)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("970214564", 1) {
		t.Fatalf("expected valid check digit")
	}
	if Valid("970214564", 2) {
		t.Fatalf("expected invalid check digit")
	}
	if Valid("97021x564", 1) {
		t.Fatalf("expected invalid sequence to fail")
	}
}
