package cli

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Paths: []string{"."}, MaxDepth: -1}, false},
		{"no paths", Config{MaxDepth: -1}, true},
		{"bad depth", Config{Paths: []string{"."}, MaxDepth: -2}, true},
		{"empty pattern", Config{Paths: []string{"."}, MaxDepth: -1, Patterns: []string{""}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
