package main

import (
	"strconv"
	"strings"
)

// parseSize reads a leading integer from raw, ignoring anything after it.
// Missing, non-numeric, zero or negative input yields def. Values above
// maxEntitySize are capped.
func parseSize(raw string, def float64) float64 {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return def
	}
	return float64(min(n, maxEntitySize))
}

func textOr(raw, def string) string {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return raw
}

func blockParamsFrom(values []string, defaults BlockParams) BlockParams {
	get := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	return BlockParams{
		Color:  textOr(get(0), defaults.Color),
		Width:  parseSize(get(1), defaults.Width),
		Height: parseSize(get(2), defaults.Height),
		Label:  textOr(get(3), defaults.Label),
	}
}

func portParamsFrom(values []string, side Side, size float64) PortParams {
	get := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	return PortParams{
		Label: textOr(get(0), defaultPortLabel(side)),
		Size:  parseSize(get(1), size),
	}
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
