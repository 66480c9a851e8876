package natsbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		prefix, eventType, want string
	}{
		{"", "broker", "ecommerce.events.broker"},
		{"bo", "loja", "bo.loja"},
		{" bo.events. ", "usuario", "bo.events.usuario"},
		{"...", "historicos", "ecommerce.events.historicos"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Subject(tt.prefix, tt.eventType))
	}
}

func TestNewWithConnRequiresConnection(t *testing.T) {
	_, err := NewWithConn(nil, "bo")
	assert.Error(t, err)
}
