package errors

import "testing"

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"json", "json", false},
		{"html", "html", false},
		{"dot", "dot", false},
		{"svg", "svg", false},
		{"png", "png", false},

		{"empty", "", true},
		{"unknown", "bmp", true},
		{"case sensitive", "JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"json", "html"}); err != nil {
		t.Errorf("ValidateFormats(json, html) error = %v, want nil", err)
	}
	if err := ValidateFormats([]string{"json", "gif"}); err == nil {
		t.Error("ValidateFormats(json, gif) expected error, got nil")
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "out/figure.json", false},
		{"valid absolute", "/tmp/figure.html", false},

		{"empty", "", true},
		{"null byte", "out\x00.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
