package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// ParseMap parses a map clause payload: an optional "mapper(ID)," prefix,
// an optional "map-type:" prefix, then the item list. Colon
// splitting respects balanced delimiters so "mapper(x), to: arr[0:N]"
// parses correctly.
func ParseMap(payload string, cfg Config) (ir.MapData, error) {
	var data ir.MapData
	rest := strings.TrimSpace(payload)

	if strings.HasPrefix(rest, "mapper(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return data, &ClauseSyntaxError{Message: "map clause has unterminated mapper(...)"}
		}
		id := strings.TrimSpace(rest[len("mapper(") : end])
		data.Mapper = &ir.Identifier{Text: id}
		rest = strings.TrimLeft(rest[end+1:], " ")
		rest = strings.TrimPrefix(rest, ",")
		rest = strings.TrimLeft(rest, " ")
	}

	if before, after, ok := SplitTopLevelFirst(rest, ':'); ok {
		if mt, known := ir.LookupMapType(strings.TrimSpace(before)); known {
			data.MapType = &mt
			rest = strings.TrimLeft(after, " ")
		}
	}

	items, err := ParseItemList(rest, cfg)
	if err != nil {
		return ir.MapData{}, err
	}
	data.Items = items
	return data, nil
}
