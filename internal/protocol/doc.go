// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the termplay wire codec.
//
// Every message is a single JSON object followed by "\r\n". The object holds
// a discriminator field naming the variant in snake_case and the variant's
// payload fields flattened next to it:
//
//	{"_ct":"register","login":"alice","password":"secret"}
//	{"_et":"register_response","success":true,"message":"Welcome"}
//
// Client commands use the "_ct" field, server events use "_et". The legacy
// server naming ("_st", register_response with email_sent) is still decoded.
package protocol
