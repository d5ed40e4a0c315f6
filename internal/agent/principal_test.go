package agent

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
)

func TestCanisterID_RoundTrip(t *testing.T) {
	ids := []CanisterID{
		{},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 1},
		{0, 0, 0, 0, 0, 0x30, 0x00, 0x02, 0x01, 0x01},
		bytes.Repeat([]byte{0xab}, maxPrincipalLen),
	}

	for _, id := range ids {
		text := id.String()
		if strings.ToLower(text) != text {
			t.Errorf("String() = %s, want lower case", text)
		}
		parsed, err := ParseCanisterID(text)
		if err != nil {
			t.Fatalf("ParseCanisterID(%q) unexpected error: %v", text, err)
		}
		if !bytes.Equal(parsed, id) {
			t.Errorf("ParseCanisterID(%q) = %x, want %x", text, []byte(parsed), []byte(id))
		}
	}
}

func TestCanisterID_KnownIDs(t *testing.T) {
	tests := []struct {
		text string
		raw  string
	}{
		{"rrkah-fqaaa-aaaaa-aaaaq-cai", "00000000000000010101"},
		{"ryjl3-tyaaa-aaaaa-aaaba-cai", "00000000000000020101"},
		{"2vxsx-fae", "04"},
		{"aaaaa-aa", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			raw, err := hex.DecodeString(tt.raw)
			if err != nil {
				t.Fatal(err)
			}

			id, err := ParseCanisterID(tt.text)
			if err != nil {
				t.Fatalf("ParseCanisterID(%q) unexpected error: %v", tt.text, err)
			}
			if !bytes.Equal(id, raw) {
				t.Errorf("ParseCanisterID(%q) = %x, want %s", tt.text, []byte(id), tt.raw)
			}
			if got := CanisterID(raw).String(); got != tt.text {
				t.Errorf("String() = %s, want %s", got, tt.text)
			}
			if got := CanisterID(raw).Principal().String(); got != tt.text {
				t.Errorf("Principal().String() = %s, want %s", got, tt.text)
			}
		})
	}
}

func TestCanisterID_Grouping(t *testing.T) {
	text := CanisterID{0, 0, 0, 0, 0, 0, 0, 1, 1, 1}.String()
	groups := strings.Split(text, "-")
	for i, g := range groups[:len(groups)-1] {
		if len(g) != 5 {
			t.Errorf("group %d = %q, want 5 chars", i, g)
		}
	}
	if last := groups[len(groups)-1]; len(last) == 0 || len(last) > 5 {
		t.Errorf("last group = %q", last)
	}
}

func TestCanisterID_ManagementCanister(t *testing.T) {
	if got := (CanisterID{}).String(); got != "aaaaa-aa" {
		t.Errorf("String() = %s, want aaaaa-aa", got)
	}
	if !(CanisterID{}).IsZero() {
		t.Error("empty id should be zero")
	}
}

func TestParseCanisterID_Invalid(t *testing.T) {
	valid := CanisterID{0, 0, 0, 0, 0, 0, 0, 1, 1, 1}.String()

	corrupt := []byte(valid)
	if corrupt[0] == 'a' {
		corrupt[0] = 'b'
	} else {
		corrupt[0] = 'a'
	}

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"bad alphabet", "rrkah-fqaaa-aaaaa-aaaa1-cai"},
		{"bad grouping", strings.ReplaceAll(valid, "-", "")},
		{"empty group", strings.Replace(valid, "-", "--", 1)},
		{"checksum mismatch", string(corrupt)},
		{"upper case", strings.ToUpper(valid)},
		{"too short", "aaaa"},
		{"too long", CanisterID(bytes.Repeat([]byte{0xab}, maxPrincipalLen+1)).String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCanisterID(tt.text); err == nil {
				t.Errorf("ParseCanisterID(%q) expected error", tt.text)
			}
		})
	}
}

func TestMustParseCanisterID_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCanisterID should panic on invalid input")
		}
	}()
	MustParseCanisterID("not-a-principal")
}
