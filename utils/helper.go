package utils

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

// BoolOrDefault dereferences v, falling back to def when v is nil.
// Fixture booleans are pointers so that an omitted field and an
// explicit false can be told apart.
func BoolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func StringOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
