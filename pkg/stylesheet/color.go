package stylesheet

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB decodes a #rgb or #rrggbb color. Each channel is decoded on its
// own; a 3-digit channel is doubled ("a" is "aa").
func HexToRGB(hex string) (r, g, b int, ok bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	var parts [3]string
	switch len(h) {
	case 3:
		parts = [3]string{h[0:1] + h[0:1], h[1:2] + h[1:2], h[2:3] + h[2:3]}
	case 6:
		parts = [3]string{h[0:2], h[2:4], h[4:6]}
	default:
		return 0, 0, 0, false
	}

	var channels [3]int
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = int(v)
	}
	return channels[0], channels[1], channels[2], true
}

// RGBTriple formats a hex color as "r, g, b" for use inside rgba(). Invalid
// colors become black.
func RGBTriple(hex string) string {
	r, g, b, _ := HexToRGB(hex)
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}
