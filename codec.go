package replica

import "github.com/vmihailenco/msgpack/v5"

// Codec provides content-type aware marshaling. The engine uses it for the
// byte-buffer round trip behind the Encodable fallback; every type reachable
// from an Encodable field must be representable in the codec's encoding.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/msgpack").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// msgpackCodec implements Codec for MessagePack.
type msgpackCodec struct{}

// MessagePack returns the default binary codec. Alternative providers live
// in the json, xml, yaml, and bson subpackages.
func MessagePack() Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
