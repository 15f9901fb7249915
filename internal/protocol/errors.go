// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import "errors"

// Codec errors. Callers match them with [errors.Is]; the wrapped error
// carries the offending tag, field or the JSON parser message.
var (
	// ErrMalformed is returned when a line is not a JSON object or its payload
	// does not fit the variant named by the discriminator. Encoding returns it
	// for string fields that are not valid UTF-8.
	ErrMalformed = errors.New("malformed message")

	// ErrUnknownTag is returned when the discriminator field is missing or
	// names no known variant.
	ErrUnknownTag = errors.New("unknown message tag")
)
