package validation

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{
			name:   "Standard watch URL",
			url:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Watch URL with extra parameters",
			url:    "https://www.youtube.com/watch?v=abc123&t=30",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "Watch URL with trailing parameters",
			url:    "https://www.youtube.com/watch?v=abc123&list=PL1&index=2",
			wantID: "abc123",
			wantOK: true,
		},
		{
			name:   "Short URL",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Short URL with query string",
			url:    "https://youtu.be/dQw4w9WgXcQ?t=42",
			wantID: "dQw4w9WgXcQ",
			wantOK: true,
		},
		{
			name:   "Empty input",
			url:    "",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "Whitespace input",
			url:    "   ",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "Malformed input",
			url:    "not a youtube url",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "Watch URL without video ID",
			url:    "https://www.youtube.com/watch",
			wantID: "",
			wantOK: false,
		},
		{
			name:   "Short URL with empty path segment",
			url:    "https://youtu.be/",
			wantID: "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			if ok != tt.wantOK {
				t.Errorf("ExtractVideoID() ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("ExtractVideoID() id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "Empty URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "Invalid URL format",
			url:     "not-a-url",
			wantErr: true,
		},
		{
			name:    "Non-HTTP scheme",
			url:     "ftp://example.com",
			wantErr: true,
		},
		{
			name:    "Valid YouTube URL",
			url:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Valid short URL",
			url:     "https://youtu.be/dQw4w9WgXcQ",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
