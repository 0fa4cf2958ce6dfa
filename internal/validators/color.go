package validators

import "regexp"

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor valida a cor usada nas células do calendário (#rrggbb).
func IsHexColor(s string) bool {
	return hexColor.MatchString(s)
}
