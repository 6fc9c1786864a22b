package dialback

import (
	"encoding/xml"
	"fmt"
)

const Namespace = "urn:xmpp:features:dialback"

// InvalidKeyError reports that a remote server presented a dialback key that did not verify.
type InvalidKeyError struct {
	from string
	to   string
}

func NewInvalidKeyError(from string, to string) InvalidKeyError {
	return InvalidKeyError{from: from, to: to}
}

func (e InvalidKeyError) From() string {
	return e.from
}

func (e InvalidKeyError) To() string {
	return e.to
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("dialback: invalid key from %s to %s", e.from, e.to)
}

type result struct {
	XMLName xml.Name `xml:"urn:xmpp:features:dialback result"`
	From    string   `xml:"from,attr"`
	To      string   `xml:"to,attr"`
	Type    string   `xml:"type,attr"`
}

// XML renders the <result type="invalid"/> element sent back to the originating server.
func (e InvalidKeyError) XML() (string, error) {
	data, err := xml.Marshal(result{From: e.from, To: e.to, Type: "invalid"})
	if err != nil {
		return "", fmt.Errorf("dialback: XML: could not marshal result: %w", err)
	}
	return string(data), nil
}
