package errors

import "strings"

// Output formats accepted across CLI, API, and pipeline.
var ValidFormats = []string{"json", "html", "dot", "svg", "png"}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	for _, f := range ValidFormats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat,
		"invalid format %q (valid: %s)", format, strings.Join(ValidFormats, ", "))
}

// ValidateFormats checks a list of output formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOutputPath ensures an output path is usable: non-empty and not an
// obvious traversal attempt when it came from an API request.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return New(ErrCodeInvalidPath, "output path contains a null byte")
	}
	return nil
}
