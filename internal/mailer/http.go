// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/utils"
	"github.com/go-resty/resty/v2"
)

// SignatureHeader carries the hex HMAC-SHA256 of the request body under the
// API key.
const SignatureHeader = "X-Signature"

// TraceIDHeader forwards the trace id of the session that triggered the mail.
const TraceIDHeader = "X-Trace-ID"

const sendPath = "/v1/send"

type httpMailer struct {
	client *utils.HTTPClient

	from   string
	apiKey string

	logger *logger.Logger
}

type apiMessage struct {
	From string `json:"from"`
	Message
}

// NewHTTPMailer returns a Mailer posting JSON to the mail API at cfg.APIURL.
func NewHTTPMailer(cfg config.Mail, log *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	return &httpMailer{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		from:   cfg.From,
		apiKey: cfg.APIKey,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMailer) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	body, err := json.Marshal(apiMessage{From: h.from, Message: msg})
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetHeader(SignatureHeader, utils.HashString(body, h.apiKey)).
		SetAuthToken(h.apiKey).
		SetBody(body).
		Post(sendPath)
	if err != nil {
		h.logger.Err(err).Str("to", msg.To).Msg("mail api request failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).Str("to", msg.To).Msg("mail api rejected message")
		return err
	}

	h.logger.Debug().Str("to", msg.To).Msg("mail sent")
	return nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrAPIRejected, resp.StatusCode(), body)
}
