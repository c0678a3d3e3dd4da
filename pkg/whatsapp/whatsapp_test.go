package whatsapp

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLink(t *testing.T) {
	link := OrderLink("https://wa.me", "5500000000000", "Olá! Gostaria de comprar:\n\n- Foo (1x) - R$ 10")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5500000000000", parsed.Path)
	assert.Equal(t, "Olá! Gostaria de comprar:\n\n- Foo (1x) - R$ 10", parsed.Query().Get("text"))
}
