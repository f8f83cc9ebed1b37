// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

var (
	ErrNotAChannel = errors.New("chat is not a channel")
	ErrBotNotAdmin = errors.New("bot is not an administrator of the channel")
)

// Client is a minimal Bot API client covering the calls the tally core
// needs: membership lookups and channel validation.
type Client struct {
	token   string
	baseURL string
	httpc   *http.Client
}

func New(token string, timeout time.Duration) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// apiEnvelope is the Bot API response wrapper
type apiEnvelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
}

func (c *Client) call(ctx context.Context, method string, params url.Values, result interface{}) error {
	u := c.baseURL + "/bot" + c.token + "/" + method
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}

	if !envelope.OK {
		return fmt.Errorf("%s failed: %s", method, envelope.Description)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}

	return nil
}

// GetMembershipStatus returns the user's status in the channel
// ("member", "administrator", "creator", "left", "kicked", ...).
// Implements the membership oracle consulted by the eligibility gate.
func (c *Client) GetMembershipStatus(ctx context.Context, channelID, userID int64) (string, error) {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(channelID, 10))
	params.Set("user_id", strconv.FormatInt(userID, 10))

	var member struct {
		Status string `json:"status"`
	}
	if err := c.call(ctx, "getChatMember", params, &member); err != nil {
		return "", err
	}

	return member.Status, nil
}

// ValidateChannel confirms the chat is a channel and that the bot itself
// is among its administrators. Called before the channel registry is
// updated; on any failure the registry must be left untouched.
func (c *Client) ValidateChannel(ctx context.Context, channelID int64) error {
	params := url.Values{}
	params.Set("chat_id", strconv.FormatInt(channelID, 10))

	var chat struct {
		Type string `json:"type"`
	}
	if err := c.call(ctx, "getChat", params, &chat); err != nil {
		return err
	}
	if chat.Type != "channel" {
		return ErrNotAChannel
	}

	var me struct {
		ID int64 `json:"id"`
	}
	if err := c.call(ctx, "getMe", nil, &me); err != nil {
		return err
	}

	var admins []struct {
		User struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	if err := c.call(ctx, "getChatAdministrators", params, &admins); err != nil {
		return err
	}

	for _, admin := range admins {
		if admin.User.ID == me.ID {
			return nil
		}
	}

	return ErrBotNotAdmin
}
