// Package sanitizer turns user-supplied file names into filesystem-safe slugs.
//
// Name applies a fixed, ordered table of literal substitutions (accented vowels,
// punctuation, "%" and friends) to a trimmed, lower-cased name and finishes with a
// single "---" to "-" pass. The table and its order are fixed, and Name never uses
// regular expressions or Unicode normalisation.
//
// BaseName strips directory components, which Name does not do on its own ("/"
// becomes "-" instead). Apply and Compose build pipelines from both:
//
//	slug := sanitizer.Compose(sanitizer.BaseName, sanitizer.Name)
//	slug("../Foto Estate (1).JPG") // "foto-estate-1.jpg"
//
// All helpers are pure and safe for concurrent use. None of them returns an error.
package sanitizer
