package cli

import "testing"

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		dir       string
		language  string
		recursive bool
		watch     bool
		wantErr   bool
	}{
		{name: "file only", file: "a.mp3"},
		{name: "directory only", dir: "samples"},
		{name: "directory recursive", dir: "samples", recursive: true},
		{name: "directory watch", dir: "samples", watch: true},
		{name: "explicit language", file: "a.mp3", language: "en"},
		{name: "neither file nor directory", wantErr: true},
		{name: "both file and directory", file: "a.mp3", dir: "samples", wantErr: true},
		{name: "recursive without directory", file: "a.mp3", recursive: true, wantErr: true},
		{name: "watch without directory", file: "a.mp3", watch: true, wantErr: true},
		{name: "language too long", file: "a.mp3", language: "eng", wantErr: true},
		{name: "language too short", file: "a.mp3", language: "e", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(tt.file, tt.dir, tt.language, tt.recursive, tt.watch)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
