package pagemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemark/pagemark"
)

func TestChunk_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		chunk   pagemark.Chunk
		wantErr bool
	}{
		{"valid heading", pagemark.Chunk{Type: pagemark.ChunkHeading, Level: 2, Text: "Section"}, false},
		{"heading level out of range", pagemark.Chunk{Type: pagemark.ChunkHeading, Level: 7, Text: "Deep"}, true},
		{"heading without text", pagemark.Chunk{Type: pagemark.ChunkHeading, Level: 1}, true},
		{"valid paragraph", pagemark.Chunk{Type: pagemark.ChunkParagraph, Text: "Text."}, false},
		{"empty paragraph", pagemark.Chunk{Type: pagemark.ChunkParagraph}, true},
		{"valid list", pagemark.Chunk{Type: pagemark.ChunkList, Items: []string{"a"}}, false},
		{"empty list", pagemark.Chunk{Type: pagemark.ChunkList}, true},
		{"valid code", pagemark.Chunk{Type: pagemark.ChunkCode, Code: "x := 1"}, false},
		{"empty code", pagemark.Chunk{Type: pagemark.ChunkCode, Lang: "go"}, true},
		{"valid table", pagemark.Chunk{Type: pagemark.ChunkTable, Rows: [][]string{{"a"}}}, false},
		{"unknown type", pagemark.Chunk{Type: "mystery", Text: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.chunk.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, pagemark.EINVALID, pagemark.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
