package casper

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AccessRights is the bit set of permissions carried by a URef.
type AccessRights byte

const (
	AccessNone         AccessRights = 0
	AccessRead         AccessRights = 1
	AccessWrite        AccessRights = 2
	AccessAdd          AccessRights = 4
	AccessReadAddWrite AccessRights = AccessRead | AccessWrite | AccessAdd
)

// URef is an unforgeable reference to a value in global state (most
// commonly a purse). Formatted string form: "uref-<64 hex>-<3-digit
// access rights>", e.g. "uref-00..00-007".
type URef struct {
	Addr   [DigestLength]byte
	Access AccessRights
}

const urefPrefix = "uref-"

// ParseURef decodes the "uref-<hex>-<rights>" formatted string.
func ParseURef(s string) (URef, error) {
	var u URef
	body, ok := strings.CutPrefix(s, urefPrefix)
	if !ok {
		return u, fmt.Errorf("uref %q must start with %q", s, urefPrefix)
	}

	hexPart, rightsPart, ok := strings.Cut(body, "-")
	if !ok {
		return u, fmt.Errorf("uref %q must have a -<rights> suffix", s)
	}

	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return u, fmt.Errorf("decode uref address %q: %w", s, err)
	}
	if len(raw) != DigestLength {
		return u, fmt.Errorf("uref address must be %d bytes, got %d", DigestLength, len(raw))
	}

	rights, err := strconv.ParseUint(rightsPart, 10, 8)
	if err != nil || rights > uint64(AccessReadAddWrite) {
		return u, fmt.Errorf("invalid uref access rights %q", rightsPart)
	}

	copy(u.Addr[:], raw)
	u.Access = AccessRights(rights)
	return u, nil
}

// FormattedString returns the "uref-<hex>-<rights>" form.
func (u URef) FormattedString() string {
	return fmt.Sprintf("%s%s-%03d", urefPrefix, hex.EncodeToString(u.Addr[:]), u.Access)
}

func (u URef) String() string {
	return u.FormattedString()
}

// WriteTo appends the 32 address bytes followed by the access-rights byte.
func (u URef) WriteTo(e *Encoder) {
	e.Raw(u.Addr[:])
	e.Byte(byte(u.Access))
}

func (u URef) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.FormattedString())
}

func (u *URef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseURef(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
