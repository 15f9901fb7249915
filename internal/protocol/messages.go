// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

// Discriminator field names.
const (
	UserCommandField   = "_ct"
	ServerEventField   = "_et"
	ServerCommandField = "_st"
)

// LineTerminator ends every encoded message.
const LineTerminator = "\r\n"

// UserCommand is a message sent by the client. The set of implementations is
// closed: [RegisterCommand] and [LoginCommand].
type UserCommand interface {
	Name() string
	userCommand()
}

// ServerEvent is a message sent by the server to the client. The set of
// implementations is closed: [RegisterResponseEvent] and [LoginResponseEvent].
type ServerEvent interface {
	Name() string
	serverEvent()
}

// ServerCommand is the legacy server-side naming of the registration reply.
// It is kept so that older servers still talk to the client.
type ServerCommand interface {
	Name() string
	serverCommand()
}

// RegisterCommand asks the server to create an account.
type RegisterCommand struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (RegisterCommand) Name() string { return "register" }
func (RegisterCommand) userCommand() {}

// LoginCommand asks the server to check credentials of a confirmed account.
type LoginCommand struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (LoginCommand) Name() string { return "login" }
func (LoginCommand) userCommand() {}

// RegisterResponseEvent answers a [RegisterCommand].
type RegisterResponseEvent struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (RegisterResponseEvent) Name() string { return "register_response" }
func (RegisterResponseEvent) serverEvent() {}

// LoginResponseEvent answers a [LoginCommand].
type LoginResponseEvent struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (LoginResponseEvent) Name() string { return "login_response" }
func (LoginResponseEvent) serverEvent() {}

// RegisterResponseCommand is the legacy registration reply.
type RegisterResponseCommand struct {
	EmailSent bool `json:"email_sent"`
}

func (RegisterResponseCommand) Name() string  { return "register_response" }
func (RegisterResponseCommand) serverCommand() {}

// Messages shown for legacy replies, which carry no text of their own.
const (
	legacyEmailSentMessage    = "Registration received, a confirmation email has been sent"
	legacyEmailNotSentMessage = "Registration received, but the confirmation email could not be sent"
)

// EventFromLegacy converts the legacy registration reply into the event the
// client understands.
func EventFromLegacy(cmd ServerCommand) ServerEvent {
	switch c := cmd.(type) {
	case RegisterResponseCommand:
		if c.EmailSent {
			return RegisterResponseEvent{Success: true, Message: legacyEmailSentMessage}
		}
		return RegisterResponseEvent{Success: false, Message: legacyEmailNotSentMessage}
	default:
		return nil
	}
}
