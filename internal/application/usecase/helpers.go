package usecase

// set copia *v en dst cuando el campo viene en la petición.
func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func mapList[E any, R any](list []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(list))
	for _, e := range list {
		out = append(out, fn(e))
	}
	return out
}
