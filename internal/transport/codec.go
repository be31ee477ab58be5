package transport

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// gobCodec implements grpc/encoding.Codec using encoding/gob instead of
// protobuf. Registering it under the name "proto" (encoding.RegisterCodec
// keys codecs by Name()) replaces gRPC's default codec process-wide, so
// every message defined in messages.go can flow over gRPC as a plain Go
// struct without implementing proto.Message or running protoc, without
// fabricating generated stubs.
type gobCodec struct{}

func (gobCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("transport: gob marshal: %w", err)
	}
	return buf.Bytes(), nil
}

func (gobCodec) Unmarshal(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("transport: gob unmarshal: %w", err)
	}
	return nil
}

func (gobCodec) Name() string { return "proto" }

func init() {
	encoding.RegisterCodec(gobCodec{})
}
