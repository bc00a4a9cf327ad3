// Package addrrange provides ranges of IP addresses measured as the number
// of addresses between them.
//
// IPv4 addresses sort before IPv6 addresses, so a range may start in IPv4 and
// end in IPv6. Such a range covers the IPv4 addresses from its start up and
// the IPv6 addresses below its end; IPv4-mapped IPv6 addresses count as IPv6.
package addrrange

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"github.com/henderiw/ranges/pkg/ranges"
	"go4.org/netipx"
)

type kind struct{}

func (kind) Name() string { return "addr" }

func (kind) Compare(a, b netip.Addr) int { return a.Compare(b) }

func (kind) Meter(from, to netip.Addr) *big.Int {
	return new(big.Int).Sub(addrToInt(to), addrToInt(from))
}

func (kind) Zero() *big.Int { return new(big.Int) }

func (kind) CompareDistance(a, b *big.Int) int { return a.Cmp(b) }

func (kind) Format(a netip.Addr) string { return a.String() }

// Kind is the family of address ranges.
var Kind ranges.Kind[netip.Addr, *big.Int] = kind{}

type Range = ranges.Range[netip.Addr, *big.Int]

// Of returns the range spanning start and end. end itself is not part of
// the range.
func Of(start, end netip.Addr) Range {
	return ranges.Between(Kind, start, end)
}

// FromIPRange converts the inclusive range r.
func FromIPRange(r netipx.IPRange) (Range, error) {
	if !r.IsValid() {
		return Range{}, fmt.Errorf("invalid ip range %s", r)
	}
	end := r.To().Next()
	if !end.IsValid() && r.To() == lastIPv4 {
		// the IPv6 space follows the last IPv4 address
		end = netip.IPv6Unspecified()
	}
	if !end.IsValid() {
		return Range{}, fmt.Errorf("ip range %s reaches the end of the address space", r)
	}
	return Of(r.From(), end), nil
}

// ToIPRange converts r into an inclusive range. An empty r, or one spanning
// both address families, has no single inclusive form and returns false.
func ToIPRange(r Range) (netipx.IPRange, bool) {
	iprs := ipRanges(r)
	if len(iprs) != 1 {
		return netipx.IPRange{}, false
	}
	return iprs[0], true
}

// ipRanges splits r into inclusive ranges of one address family each.
func ipRanges(r Range) []netipx.IPRange {
	if r.IsZero() || r.IsEmpty() {
		return nil
	}
	start, end := r.Start(), r.End()
	if start.Is4() == end.Is4() {
		return []netipx.IPRange{netipx.IPRangeFrom(start, end.Prev())}
	}
	iprs := []netipx.IPRange{netipx.IPRangeFrom(start, lastIPv4)}
	if end != netip.IPv6Unspecified() {
		iprs = append(iprs, netipx.IPRangeFrom(netip.IPv6Unspecified(), end.Prev()))
	}
	return iprs
}

// Parse parses a prefix such as "10.0.0.0/24" or an inclusive range such as
// "10.0.0.1-10.0.0.9".
func Parse(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return Range{}, fmt.Errorf("invalid prefix %q: %w", s, err)
		}
		return FromIPRange(netipx.RangeOfPrefix(p))
	}
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return FromIPRange(r)
}

// Prefixes returns the smallest set of prefixes covering r.
func Prefixes(r Range) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, ipr := range ipRanges(r) {
		prefixes = ipr.AppendPrefixes(prefixes)
	}
	return prefixes
}

var (
	lastIPv4 = netip.AddrFrom4([4]byte{0xff, 0xff, 0xff, 0xff})
	// ipv6Offset places IPv6 after all IPv4 addresses, matching Addr.Compare
	ipv6Offset = new(big.Int).Lsh(big.NewInt(1), 32)
)

// addrToInt maps a to its position in the address order: IPv4 as its 32 bit
// value, IPv6 as its 128 bit value past the IPv4 space.
func addrToInt(a netip.Addr) *big.Int {
	if a.Is4() {
		b := a.As4()
		return new(big.Int).SetBytes(b[:])
	}
	b := a.As16()
	i := new(big.Int).SetBytes(b[:])
	return i.Add(i, ipv6Offset)
}
