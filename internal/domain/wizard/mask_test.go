package wizard_test

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/jsamuelsen11/gtti-registration/internal/domain/wizard"
)

func TestMask_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mask  wizard.Mask
		input string
		want  string
	}{
		{"full cnic", cnicMask, "3520212345671", "35202-1234567-1"},
		{"already masked cnic", cnicMask, "35202-1234567-1", "35202-1234567-1"},
		{"partial cnic stops before separator", cnicMask, "35202", "35202"},
		{"separator inserted once next digit arrives", cnicMask, "352021", "35202-1"},
		{"letters stripped", cnicMask, "35a20b2-12", "35202-12"},
		{"surplus digits dropped", cnicMask, "35202123456719999", "35202-1234567-1"},
		{"phone", phoneMask, "03001234567", "0300-1234567"},
		{"phone with spaces and plus", phoneMask, "+0300 123 4567", "0300-1234567"},
		{"no digits", phoneMask, "abc-", ""},
		{"empty", phoneMask, "", ""},
		{"zero mask passes through", "", "0300 abc", "0300 abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.mask.Apply(tt.input); got != tt.want {
				t.Errorf("Mask(%q).Apply(%q) = %q, want %q", tt.mask, tt.input, got, tt.want)
			}
		})
	}
}

func TestMask_Capacity(t *testing.T) {
	t.Parallel()

	if got := cnicMask.Capacity(); got != 13 {
		t.Errorf("cnic Capacity() = %d, want 13", got)
	}
	if got := phoneMask.Capacity(); got != 11 {
		t.Errorf("phone Capacity() = %d, want 11", got)
	}
}

func TestMask_Complete(t *testing.T) {
	t.Parallel()

	if !cnicMask.Complete("35202-1234567-1") {
		t.Error("Complete(full cnic) = false, want true")
	}
	if cnicMask.Complete("35202-1234567") {
		t.Error("Complete(partial cnic) = true, want false")
	}
	if cnicMask.Complete("35202_1234567-1") {
		t.Error("Complete(wrong separator) = true, want false")
	}
}

// ===========================================================================
// Property-Based Tests (using pgregory.net/rapid)
// ===========================================================================

func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func TestProperty_MaskedValueFollowsSeparatorPattern(t *testing.T) {
	masks := []wizard.Mask{cnicMask, phoneMask}

	rapid.Check(t, func(rt *rapid.T) {
		mask := rapid.SampledFrom(masks).Draw(rt, "mask")
		input := rapid.String().Draw(rt, "input")

		got := mask.Apply(input)

		if len(got) > len(mask) {
			rt.Fatalf("Apply(%q) = %q longer than mask %q", input, got, mask)
		}
		for i := 0; i < len(got); i++ {
			if mask[i] == 'x' {
				if got[i] < '0' || got[i] > '9' {
					rt.Fatalf("Apply(%q) = %q has non-digit %q at digit slot %d", input, got, got[i], i)
				}
			} else if got[i] != mask[i] {
				rt.Fatalf("Apply(%q) = %q has %q at separator slot %d, want %q", input, got, got[i], i, mask[i])
			}
		}
		if last := len(got) - 1; last >= 0 && mask[last] != 'x' {
			rt.Fatalf("Apply(%q) = %q ends with a separator", input, got)
		}
	})
}

func TestProperty_MaskKeepsOnlyInputDigitsInOrder(t *testing.T) {
	masks := []wizard.Mask{cnicMask, phoneMask}

	rapid.Check(t, func(rt *rapid.T) {
		mask := rapid.SampledFrom(masks).Draw(rt, "mask")
		input := rapid.String().Draw(rt, "input")

		in := digitsOf(input)
		kept := digitsOf(mask.Apply(input))

		want := in
		if len(want) > mask.Capacity() {
			want = want[:mask.Capacity()]
		}
		if kept != want {
			rt.Fatalf("digits of Apply(%q) = %q, want %q", input, kept, want)
		}
	})
}

func TestProperty_MaskIdempotent(t *testing.T) {
	masks := []wizard.Mask{cnicMask, phoneMask}

	rapid.Check(t, func(rt *rapid.T) {
		mask := rapid.SampledFrom(masks).Draw(rt, "mask")
		input := rapid.String().Draw(rt, "input")

		once := mask.Apply(input)
		if twice := mask.Apply(once); twice != once {
			rt.Fatalf("Apply not idempotent: %q then %q", once, twice)
		}
	})
}
