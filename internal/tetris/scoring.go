package tetris

import "math"

// Points returns the score for clearing lines rows with one lock:
// round(lines^2.5) * 1000, so 1, 2, 3 and 4 rows are worth 1000, 6000, 16000
// and 32000.
func Points(lines int) int {
	if lines <= 0 {
		return 0
	}
	return int(math.Round(math.Pow(float64(lines), 2.5))) * 1000
}
