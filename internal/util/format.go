package util

// TruncateContent shortens s to maxLength runes, appending "...".
func TruncateContent(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength]) + "..."
}
