package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: Default(),
		},
		{
			name: "all flags",
			args: []string{"-content-type", "text/xml", "-dev"},
			want: Config{ContentType: "text/xml", Development: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"-port", "9392"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
