package utils

import "testing"

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short text stays whole",
			text:       "hello",
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "exact fit stays whole",
			text:       "abcde",
			chunkSize:  5,
			overlap:    1,
			wantChunks: 1,
		},
		{
			name:       "splits with overlap",
			text:       "abcdefghij",
			chunkSize:  4,
			overlap:    2,
			wantChunks: 4,
		},
		{
			name:       "overlap larger than chunk falls back",
			text:       "abcdefghij",
			chunkSize:  4,
			overlap:    4,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("got %d chunks %v, want %d", len(chunks), chunks, tt.wantChunks)
			}

			// chunks in order must reconstruct the input
			step := tt.chunkSize - tt.overlap
			if step <= 0 {
				step = tt.chunkSize
			}
			if len(chunks) > 1 {
				for i, c := range chunks[:len(chunks)-1] {
					if len(c) != tt.chunkSize {
						t.Errorf("chunk %d has length %d, want %d", i, len(c), tt.chunkSize)
					}
				}
			}
		})
	}
}

func TestSplitTextOverlapPreservesBoundary(t *testing.T) {
	chunks := SplitText("abcdefgh", 4, 2)
	// step of 2: abcd, cdef, efgh
	want := []string{"abcd", "cdef", "efgh"}
	if len(chunks) != len(want) {
		t.Fatalf("chunks = %v, want %v", chunks, want)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}
