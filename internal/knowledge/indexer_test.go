package knowledge

import "testing"

func TestExtractMetadata(t *testing.T) {
	tests := []struct {
		name         string
		root, path   string
		wantSource   string
		wantCategory string
		wantFilename string
	}{
		{
			name:         "categorized file",
			root:         "/kb",
			path:         "/kb/research/pain-points.md",
			wantSource:   "research/pain-points.md",
			wantCategory: "research",
			wantFilename: "pain-points",
		},
		{
			name:         "nested file keeps top-level category",
			root:         "/kb",
			path:         "/kb/campaigns/2025/q3.md",
			wantSource:   "campaigns/2025/q3.md",
			wantCategory: "campaigns",
			wantFilename: "q3",
		},
		{
			name:         "root-level file has no category",
			root:         "/kb",
			path:         "/kb/readme.md",
			wantSource:   "readme.md",
			wantCategory: "unknown",
			wantFilename: "readme",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := extractMetadata(tt.root, tt.path)
			if meta.source != tt.wantSource {
				t.Errorf("source = %q, want %q", meta.source, tt.wantSource)
			}
			if meta.category != tt.wantCategory {
				t.Errorf("category = %q, want %q", meta.category, tt.wantCategory)
			}
			if meta.filename != tt.wantFilename {
				t.Errorf("filename = %q, want %q", meta.filename, tt.wantFilename)
			}
		})
	}
}
