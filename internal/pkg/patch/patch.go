package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps the current optional value unless the patch carries one.
// An explicit clear is expressed by the caller with clear=true.
func CoalescePtr[T any](patch *T, current *T, clear bool) *T {
	if clear {
		return nil
	}
	if patch != nil {
		v := *patch
		return &v
	}
	return current
}
