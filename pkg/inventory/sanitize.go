package inventory

import "strings"

// SanitizeGroupName converts to lowercase and maps everything except
// 'a'-'z', '0'-'9' and '_' to '_', so NetBox slugs become valid Ansible
// group names.
func SanitizeGroupName(slug string) string {
	return strings.Map(groupNameMap, slug)
}

func groupNameMap(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r >= 'a' && r <= 'z':
		return r
	case r >= '0' && r <= '9':
		return r
	case r == '_':
		return r
	default:
		return '_'
	}
}
