// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

type variant interface {
	Name() string
}

// codec encodes and decodes one family of tagged variants.
type codec[T variant] struct {
	field    string
	variants map[string]func(data []byte) (T, error)
}

func decoderFor[V any, T any](wrap func(V) T) func(data []byte) (T, error) {
	return func(data []byte) (T, error) {
		var v V
		if err := json.Unmarshal(data, &v); err != nil {
			var zero T
			return zero, err
		}
		return wrap(v), nil
	}
}

var userCommands = codec[UserCommand]{
	field: UserCommandField,
	variants: map[string]func([]byte) (UserCommand, error){
		RegisterCommand{}.Name(): decoderFor(func(v RegisterCommand) UserCommand { return v }),
		LoginCommand{}.Name():    decoderFor(func(v LoginCommand) UserCommand { return v }),
	},
}

var serverEvents = codec[ServerEvent]{
	field: ServerEventField,
	variants: map[string]func([]byte) (ServerEvent, error){
		RegisterResponseEvent{}.Name(): decoderFor(func(v RegisterResponseEvent) ServerEvent { return v }),
		LoginResponseEvent{}.Name():    decoderFor(func(v LoginResponseEvent) ServerEvent { return v }),
	},
}

var serverCommands = codec[ServerCommand]{
	field: ServerCommandField,
	variants: map[string]func([]byte) (ServerCommand, error){
		RegisterResponseCommand{}.Name(): decoderFor(func(v RegisterResponseCommand) ServerCommand { return v }),
	},
}

// EncodeUserCommand returns cmd as one terminated line.
func EncodeUserCommand(cmd UserCommand) ([]byte, error) {
	return userCommands.encode(cmd)
}

// DecodeUserCommand parses one line into a [UserCommand].
func DecodeUserCommand(line []byte) (UserCommand, error) {
	return userCommands.decode(line)
}

// EncodeServerEvent returns ev as one terminated line.
func EncodeServerEvent(ev ServerEvent) ([]byte, error) {
	return serverEvents.encode(ev)
}

// DecodeServerEvent parses one line into a [ServerEvent]. A line written with
// the legacy "_st" discriminator is decoded as a [ServerCommand] and converted
// with [EventFromLegacy].
func DecodeServerEvent(line []byte) (ServerEvent, error) {
	line = trimTerminator(line)
	fields, err := parseObject(line)
	if err != nil {
		return nil, err
	}

	_, hasEvent := fields[ServerEventField]
	_, hasLegacy := fields[ServerCommandField]
	if !hasEvent && hasLegacy {
		cmd, err := serverCommands.decodeFields(line, fields)
		if err != nil {
			return nil, err
		}
		return EventFromLegacy(cmd), nil
	}

	return serverEvents.decodeFields(line, fields)
}

// EncodeServerCommand returns cmd as one terminated line.
func EncodeServerCommand(cmd ServerCommand) ([]byte, error) {
	return serverCommands.encode(cmd)
}

// DecodeServerCommand parses one line into a [ServerCommand].
func DecodeServerCommand(line []byte) (ServerCommand, error) {
	return serverCommands.decode(line)
}

func (c codec[T]) encode(v T) ([]byte, error) {
	// json.Marshal would silently replace invalid bytes with U+FFFD
	if field, ok := invalidUTF8Field(v); ok {
		return nil, fmt.Errorf("%w: %s field %q is not valid UTF-8", ErrMalformed, v.Name(), field)
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", v.Name(), err)
	}
	tag, err := json.Marshal(v.Name())
	if err != nil {
		return nil, fmt.Errorf("error encoding %s tag: %w", v.Name(), err)
	}

	// payload is always a JSON object: "{...}"
	var buf bytes.Buffer
	buf.Grow(len(c.field) + len(tag) + len(payload) + 6)
	buf.WriteString(`{"`)
	buf.WriteString(c.field)
	buf.WriteString(`":`)
	buf.Write(tag)
	if body := payload[1 : len(payload)-1]; len(body) > 0 {
		buf.WriteByte(',')
		buf.Write(body)
	}
	buf.WriteByte('}')
	buf.WriteString(LineTerminator)

	return buf.Bytes(), nil
}

// invalidUTF8Field returns the JSON name of the first string field of v that
// is not valid UTF-8.
func invalidUTF8Field(v any) (string, bool) {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if f.Kind() == reflect.String && !utf8.ValidString(f.String()) {
			name, _, _ := strings.Cut(rv.Type().Field(i).Tag.Get("json"), ",")
			return name, true
		}
	}
	return "", false
}

func (c codec[T]) decode(line []byte) (T, error) {
	line = trimTerminator(line)
	fields, err := parseObject(line)
	if err != nil {
		var zero T
		return zero, err
	}

	return c.decodeFields(line, fields)
}

func (c codec[T]) decodeFields(line []byte, fields map[string]json.RawMessage) (T, error) {
	var zero T

	raw, ok := fields[c.field]
	if !ok {
		return zero, fmt.Errorf("%w: missing %q field", ErrUnknownTag, c.field)
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return zero, fmt.Errorf("%w: field %q is not a string: %w", ErrMalformed, c.field, err)
	}

	decodeVariant, ok := c.variants[tag]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
	}

	v, err := decodeVariant(line)
	if err != nil {
		return zero, fmt.Errorf("%w: %s payload: %w", ErrMalformed, tag, err)
	}

	return v, nil
}

func parseObject(line []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformed)
	}

	return fields, nil
}

func trimTerminator(line []byte) []byte {
	return bytes.TrimRight(line, LineTerminator)
}
