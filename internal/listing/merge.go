package listing

// Set copies *src into *dst when src is present. A nil src is an absent or
// null request field and leaves dst untouched.
func Set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// SetPtr stores src itself when present; used for optional numeric fields.
func SetPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Replace swaps in a copy of *src when present. Lists are never merged element-wise.
func Replace[T any](dst *[]T, src *[]T) {
	if src != nil {
		*dst = append([]T(nil), (*src)...)
	}
}
