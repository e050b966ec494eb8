//go:build darwin

package rusage

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// PeakRSS returns the largest resident set size of the process in bytes.
//
// Darwin reports ru_maxrss in bytes already.
func PeakRSS() (int64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("getrusage: %w", err)
	}
	return int64(ru.Maxrss), nil
}
