package document

import (
	"fmt"
	"strconv"
	"strings"
)

type color struct {
	r, g, b int
}

// hexColor parses "#RRGGBB" or "#RGB".
func hexColor(s string) color {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = strings.Repeat(s[0:1], 2) + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		panic(fmt.Sprintf("document: invalid color %q", s))
	}

	return color{r: int(v >> 16 & 0xFF), g: int(v >> 8 & 0xFF), b: int(v & 0xFF)}
}

// Palette.
var (
	teal      = hexColor("#0D5C63")
	tealLight = hexColor("#1A7F8A")
	greyDark  = hexColor("#2C3E50")
	greyLight = hexColor("#ECF0F1")

	white     = hexColor("#FFF")
	rowBorder = hexColor("#DDD")
)
