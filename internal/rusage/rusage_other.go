//go:build !linux && !freebsd && !darwin

package rusage

// PeakRSS is not implemented here.
func PeakRSS() (int64, error) { return 0, ErrUnsupported }
