package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable pipeline from transforms.
//
// Example:
//
//	slug := sanitizer.Compose(sanitizer.BaseName, sanitizer.Name)
//	slug("uploads/Città Più Bella.png") // "citta-piu-bella.png"
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
