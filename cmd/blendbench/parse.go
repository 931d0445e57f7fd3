package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/alphablend"
)

// parsePixel parses "r,g,b,a" with each channel in [0, 255].
func parsePixel(s string) (alphablend.Pixel, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return alphablend.Pixel{}, fmt.Errorf("pixel %q: want r,g,b,a", s)
	}
	var ch [4]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return alphablend.Pixel{}, fmt.Errorf("pixel %q: channel %d: %w", s, i, err)
		}
		ch[i] = uint8(v)
	}
	return alphablend.Pixel{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// parsePoint parses "x,y".
func parsePoint(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("point %q: want x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	return x, y, nil
}

// parseKinds parses backend names. An empty list selects every backend.
func parseKinds(names []string) ([]alphablend.Kind, error) {
	kinds := make([]alphablend.Kind, 0, len(names))
	for _, n := range names {
		k, err := alphablend.ParseKind(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
