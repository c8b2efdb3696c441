package resolve

import "strings"

// CleanPhone strips spaces and drops the leading "0" of a local-format UK
// number, moving it toward international form without adding a country
// code. Numbers already prefixed with "+" keep their digits untouched.
func CleanPhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	if strings.HasPrefix(cleaned, "0") && !strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}
	return cleaned
}
