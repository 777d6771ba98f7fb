package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/palemoky/marvel-battle-poker/internal/protocol"
)

// Format is the wire encoding negotiated per connection.
type Format int

const (
	FormatJSON Format = iota
	FormatProto
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown wire format")

// ParseFormat maps the "format" query parameter to a Format.
// An empty value selects JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "pb", "proto", "protobuf":
		return FormatProto, nil
	default:
		return FormatJSON, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) String() string {
	if f == FormatProto {
		return "pb"
	}
	return "json"
}

// Binary reports whether frames must be sent as websocket binary messages.
func (f Format) Binary() bool {
	return f == FormatProto
}

const (
	fieldType    = "type"
	fieldPayload = "payload"
)

// Encode serializes a message in the given format.
func Encode(f Format, m *protocol.Message) ([]byte, error) {
	if f == FormatProto {
		return encodeProto(m)
	}
	buf := GetBuffer()
	defer PutBuffer(buf)
	if err := json.NewEncoder(buf).Encode(m); err != nil {
		return nil, err
	}
	// json.Encoder appends a newline
	out := make([]byte, buf.Len()-1)
	copy(out, buf.Bytes())
	return out, nil
}

// Decode parses a frame in the given format.
// The returned message comes from the pool; callers may return it with PutMessage.
func Decode(f Format, data []byte) (*protocol.Message, error) {
	if f == FormatProto {
		return decodeProto(data)
	}
	msg := GetMessage()
	if err := json.Unmarshal(data, msg); err != nil {
		PutMessage(msg)
		return nil, err
	}
	return msg, nil
}

// encodeProto wraps the JSON payload in a google.protobuf.Struct envelope:
// {"type": <string>, "payload": <value>}.
func encodeProto(m *protocol.Message) ([]byte, error) {
	env := GetEnvelope()
	defer PutEnvelope(env)

	env.Fields = map[string]*structpb.Value{
		fieldType: structpb.NewStringValue(string(m.Type)),
	}
	if len(m.Payload) > 0 {
		payload := &structpb.Value{}
		if err := payload.UnmarshalJSON(m.Payload); err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", m.Type, err)
		}
		env.Fields[fieldPayload] = payload
	}
	return proto.Marshal(env)
}

func decodeProto(data []byte) (*protocol.Message, error) {
	env := GetEnvelope()
	defer PutEnvelope(env)

	if err := proto.Unmarshal(data, env); err != nil {
		return nil, err
	}
	typ, ok := env.Fields[fieldType]
	if !ok {
		return nil, errors.New("decode envelope: missing type")
	}

	msg := GetMessage()
	msg.Type = protocol.MessageType(typ.GetStringValue())
	if payload, ok := env.Fields[fieldPayload]; ok {
		raw, err := payload.MarshalJSON()
		if err != nil {
			PutMessage(msg)
			return nil, fmt.Errorf("decode %s payload: %w", msg.Type, err)
		}
		msg.Payload = raw
	}
	return msg, nil
}
