package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Acme Corp", "acme-corp"},
		{"ACME   CORP", "acme-corp"},
		{"Müller & Söhne GmbH", "m-ller-s-hne-gmbh"},
		{"  acme.com  ", "acme-com"},
		{"--already--slugged--", "already-slugged"},
		{"123 Industries", "123-industries"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.input), "input %q", tt.input)
	}
}
