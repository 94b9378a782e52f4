package utils

import (
	"gitprobe/internal/constants"
)

// IsValidHash reports whether s is a well-formed object address:
// exactly 40 lowercase hex characters. Addresses are validated before
// any path construction so a malformed hash never touches the
// filesystem.
func IsValidHash(s string) bool {
	if len(s) != constants.HashStringLength {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// AbbrevHash shortens a hash for log output. Full length hashes are
// kept in command output; logs only need enough to correlate.
func AbbrevHash(hash string) string {
	if len(hash) <= 8 {
		return hash
	}
	return hash[:8]
}
