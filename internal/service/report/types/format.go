package types

import (
	"fmt"
	"strings"

	"github.com/PratikS7412/Tower-Retrival-Time/internal/estimation/height"
)

// Grouped prints v rounded to an integer with comma thousands separators.
func Grouped(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// TierSummary is the one-line description of a tier, e.g.
// "3 levels × 1900mm = 5,700mm".
func TierSummary(t height.Tier) string {
	return fmt.Sprintf("%d levels × %gmm = %smm", t.Count, t.Height, Grouped(t.Subtotal))
}
