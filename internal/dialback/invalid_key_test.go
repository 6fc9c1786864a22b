package dialback

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidKeyError(t *testing.T) {
	e := NewInvalidKeyError("remote.example.com", "local.example.com")

	assert.Equal(t, "remote.example.com", e.From())
	assert.Equal(t, "local.example.com", e.To())
	assert.EqualError(t, e, "dialback: invalid key from remote.example.com to local.example.com")
}

func TestInvalidKeyError_XML(t *testing.T) {
	t.Run("renders the result element", func(t *testing.T) {
		out, err := NewInvalidKeyError("remote.example.com", "local.example.com").XML()
		require.NoError(t, err)

		assert.Equal(t, `<result xmlns="urn:xmpp:features:dialback" from="remote.example.com" to="local.example.com" type="invalid"></result>`, out)
	})

	t.Run("attribute values are escaped", func(t *testing.T) {
		out, err := NewInvalidKeyError(`a"b`, "c<d").XML()
		require.NoError(t, err)

		var parsed struct {
			XMLName xml.Name
			From    string `xml:"from,attr"`
			To      string `xml:"to,attr"`
			Type    string `xml:"type,attr"`
		}
		require.NoError(t, xml.Unmarshal([]byte(out), &parsed))

		assert.Equal(t, Namespace, parsed.XMLName.Space)
		assert.Equal(t, "result", parsed.XMLName.Local)
		assert.Equal(t, `a"b`, parsed.From)
		assert.Equal(t, "c<d", parsed.To)
		assert.Equal(t, "invalid", parsed.Type)
	})
}
