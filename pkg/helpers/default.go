package helpers

func CoalesceString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func DefaultBool(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}

func DefaultInt(v *int, def int) int {
	if v == nil {
		return def
	}

	return *v
}

func DefaultString(v *string, def string) string {
	if v == nil {
		return def
	}

	return *v
}
