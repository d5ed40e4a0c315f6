package agent

import (
	"fmt"

	"github.com/aviate-labs/agent-go/principal"
)

// maxPrincipalLen is the largest principal the replica accepts.
const maxPrincipalLen = 29

// CanisterID is a principal identifying a canister.
type CanisterID []byte

// ParseCanisterID decodes the textual form of a principal, e.g.
// "rrkah-fqaaa-aaaaa-aaaaq-cai".
func ParseCanisterID(text string) (CanisterID, error) {
	if text == "" {
		return nil, fmt.Errorf("canister id is empty")
	}
	p, err := principal.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("canister id %q: %w", text, err)
	}

	id := CanisterID(p.Raw)
	if len(id) > maxPrincipalLen {
		return nil, fmt.Errorf("canister id %q: too long", text)
	}
	// Reject non-canonical spellings (upper case, stray trailing bits).
	if id.String() != text {
		return nil, fmt.Errorf("canister id %q: not in canonical form", text)
	}
	return id, nil
}

// MustParseCanisterID is like ParseCanisterID but panics on error.
func MustParseCanisterID(text string) CanisterID {
	id, err := ParseCanisterID(text)
	if err != nil {
		panic(err)
	}
	return id
}

// Principal returns the id as an agent-go principal.
func (id CanisterID) Principal() principal.Principal {
	return principal.Principal{Raw: []byte(id)}
}

// String returns the textual form of the principal.
func (id CanisterID) String() string {
	return id.Principal().Encode()
}

// IsZero reports whether the id is unset.
func (id CanisterID) IsZero() bool {
	return len(id) == 0
}
