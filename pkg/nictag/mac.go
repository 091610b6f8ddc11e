package nictag

import (
	"fmt"
	"strings"
)

// MACLen is the number of octets in an Ethernet address.
const MACLen = 6

// MAC is an Ethernet hardware address.
type MAC [MACLen]byte

// ParseMAC parses s as six ':'-separated groups of one or two hexadecimal
// digits. Hex digits may be upper or lower case; nothing else is accepted,
// including trailing characters after the sixth group.
func ParseMAC(s string) (MAC, error) {
	var mac MAC

	groups := strings.Split(s, ":")
	if len(groups) != MACLen {
		return MAC{}, fmt.Errorf("invalid mac address %q: want %d groups, got %d", s, MACLen, len(groups))
	}

	for i, g := range groups {
		if len(g) < 1 || len(g) > 2 {
			return MAC{}, fmt.Errorf("invalid mac address %q: group %d must have 1 or 2 hex digits", s, i+1)
		}
		var v byte
		for j := 0; j < len(g); j++ {
			d, ok := unhex(g[j])
			if !ok {
				return MAC{}, fmt.Errorf("invalid mac address %q: %q is not a hex digit", s, g[j])
			}
			v = v<<4 | d
		}
		mac[i] = v
	}

	return mac, nil
}

// String returns the canonical form, e.g. 00:11:22:aa:bb:cc.
func (m MAC) String() string {
	const hexdigits = "0123456789abcdef"
	buf := make([]byte, 0, MACLen*3-1)
	for i, b := range m {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, hexdigits[b>>4], hexdigits[b&0x0f])
	}
	return string(buf)
}

// MarshalText implements encoding.TextMarshaler.
func (m MAC) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MAC) UnmarshalText(text []byte) error {
	v, err := ParseMAC(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// NormalizeMAC parses s and returns its canonical form.
func NormalizeMAC(s string) (string, error) {
	m, err := ParseMAC(s)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
