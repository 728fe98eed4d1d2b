package utils

import "strconv"

// IsValidPort reports whether port is a decimal number in 1..65535.
func IsValidPort(port string) bool {
	n, err := strconv.Atoi(port)
	return err == nil && n >= 1 && n <= 65535
}
