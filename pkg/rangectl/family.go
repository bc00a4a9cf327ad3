package rangectl

import (
	"math/big"
	"net/netip"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/henderiw/ranges/pkg/ranges"
	"github.com/henderiw/ranges/pkg/ranges/addrrange"
	"github.com/henderiw/ranges/pkg/ranges/instantrange"
	"github.com/henderiw/ranges/pkg/ranges/intrange"
)

const (
	KindInt     = "int"
	KindInstant = "instant"
	KindAddr    = "addr"
)

var Kinds = []string{KindInt, KindInstant, KindAddr}

// Family is what the commands need to know about a range family.
type Family[P, D any] struct {
	Parse          func(s string) (ranges.Range[P, D], error)
	FormatDistance func(d D) string
}

var Ints = Family[int, int]{
	Parse:          intrange.Parse,
	FormatDistance: func(d int) string { return humanize.Comma(int64(d)) },
}

var Instants = Family[time.Time, time.Duration]{
	Parse:          instantrange.Parse,
	FormatDistance: time.Duration.String,
}

var Addrs = Family[netip.Addr, *big.Int]{
	Parse:          addrrange.Parse,
	FormatDistance: humanize.BigComma,
}

func (f Family[P, D]) parseAll(args []string) ([]ranges.Range[P, D], error) {
	rs := make([]ranges.Range[P, D], 0, len(args))
	for _, arg := range args {
		r, err := f.Parse(arg)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}
