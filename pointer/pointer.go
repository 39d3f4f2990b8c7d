package pointer

func FromAny[T any](v T) *T {
	return &v
}

func ToString(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}

func ToBool(p *bool) bool {
	if p == nil {
		return false
	}

	return *p
}
