package utils

// ShortenAddress formats a wallet address for display as 0x1234...abcd.
// Addresses too short to shorten are returned unchanged.
func ShortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
