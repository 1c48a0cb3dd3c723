package planner

import (
	"math"
	"strconv"
	"strings"
)

// parseMinutes converts the mixed duration strings found on WOD attributes to
// minutes. Accepted forms: "15 min", "2min", "30s", "90 sec", "MM:SS", and
// bare numbers (read as minutes). Unparseable input yields 0.
func parseMinutes(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 2)
		mm, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		ss, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return 0
		}
		return float64(mm) + float64(ss)/60
	}

	seconds := false
	switch {
	case strings.HasSuffix(s, "min"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "min"))
	case strings.HasSuffix(s, "sec"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "sec"))
		seconds = true
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "m"))
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "s"))
		seconds = true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if seconds {
		return v / 60
	}
	return v
}

// parseRestSeconds reads a rest string ("60s", "1 min") as whole seconds for
// persistence rows.
func parseRestSeconds(s string) int {
	return int(math.Round(parseMinutes(s) * 60))
}

// round2 rounds to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatPercent renders a numeric intensity for an exercise row, trimming
// trailing zeros ("59.5%", "70%").
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
