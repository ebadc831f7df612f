package mathx

import (
	"fmt"
	"math"
	"strconv"
)

// FormatBytes returns a string representing the size in bytes with a suffix.
func FormatBytes(size int64) string {
	const unit = 1000
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	s := float64(size)
	units := []string{"kB", "MB", "GB", "TB", "PB", "EB"}

	e := math.Floor(math.Log10(s/unit) / math.Log10(unit))
	n := s / math.Pow(unit, e)
	return strconv.FormatFloat(n, 'f', -1, 64) + " " + units[int(e)]
}
