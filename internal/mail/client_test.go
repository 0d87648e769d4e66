package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid with from",
			cfg:     Config{Host: "smtp.example.com", From: "procurement@example.com"},
			wantErr: false,
		},
		{
			name:    "valid with username only",
			cfg:     Config{Host: "smtp.example.com", Username: "mailer@example.com"},
			wantErr: false,
		},
		{
			name:    "missing host",
			cfg:     Config{From: "procurement@example.com"},
			wantErr: true,
		},
		{
			name:    "missing from and username",
			cfg:     Config{Host: "smtp.example.com"},
			wantErr: true,
		},
		{
			name:    "negative port",
			cfg:     Config{Host: "smtp.example.com", From: "procurement@example.com", Port: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigSender(t *testing.T) {
	withFrom := Config{From: "procurement@example.com", Username: "mailer"}
	assert.Equal(t, "procurement@example.com", withFrom.Sender())

	usernameOnly := Config{Username: "mailer@example.com"}
	assert.Equal(t, "mailer@example.com", usernameOnly.Sender())
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(Config{
		Host: "smtp.example.com",
		From: "procurement@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "procurement@example.com", client.from)
}

func TestNewClient_InvalidConfig(t *testing.T) {
	client, err := NewClient(Config{})

	require.Error(t, err)
	assert.Nil(t, client)
}
