package assets

import (
	"embed"
	"io"
)

//go:embed dictionary.txt answers.txt
var FS embed.FS

// Dictionary opens the embedded "<word> <freq>" dictionary.
func Dictionary() (io.ReadCloser, error) {
	return FS.Open("dictionary.txt")
}

// Answers opens the embedded answer list, one word per line.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}
