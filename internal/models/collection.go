package models

// Replace returns a new collection in which every element matching the
// predicate has been passed through the transform. The input slice is
// never mutated, so readers holding the old collection keep a
// consistent view.
func Replace[T any](collection []T, match func(T) bool, transform func(T) T) []T {
	out := make([]T, len(collection))
	for i, item := range collection {
		if match(item) {
			out[i] = transform(item)
		} else {
			out[i] = item
		}
	}
	return out
}

// Remove returns a new collection without the elements matching the
// predicate.
func Remove[T any](collection []T, match func(T) bool) []T {
	out := make([]T, 0, len(collection))
	for _, item := range collection {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Append returns a new collection with item added at the end.
func Append[T any](collection []T, item T) []T {
	out := make([]T, 0, len(collection)+1)
	out = append(out, collection...)
	out = append(out, item)
	return out
}
