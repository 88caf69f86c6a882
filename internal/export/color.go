package export

import (
	"strconv"
	"strings"
)

type rgb struct {
	R, G, B int
}

var defaultFill = rgb{R: 0, G: 204, B: 255}

// parseHex reads "#rrggbb" or "#rgb". Anything else yields ok=false.
func parseHex(s string) (rgb, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, true
}
