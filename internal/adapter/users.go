// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"strconv"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

type usersClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewUsersClient constructs the HTTP [IdentityResolver] for cfg.UsersURL.
// Every request is bounded by cfg.RequestTimeout.
func NewUsersClient(cfg config.Adapter, log *logger.Logger) (IdentityResolver, error) {
	client, err := newClient(cfg.UsersURL, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &usersClient{client: client, logger: log}, nil
}

// Authenticate calls GET /api/users/authenticate with the token as bearer.
func (c *usersClient) Authenticate(ctx context.Context, token string) (models.UserProfile, error) {
	var body envelope[models.UserProfile]

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&body).
		Get("/api/users/authenticate")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "usersClient.Authenticate").Msg("users service request failed")
		return models.UserProfile{}, mapTransportError("authenticate", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}
	if body.Data.ID == 0 {
		return models.UserProfile{}, ErrInvalidResponse
	}

	return body.Data, nil
}

// GetUser calls GET /api/users/{userID}.
func (c *usersClient) GetUser(ctx context.Context, userID int64) (models.UserProfile, error) {
	var body envelope[models.UserProfile]

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("userID", strconv.FormatInt(userID, 10)).
		SetResult(&body).
		Get("/api/users/{userID}")
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "usersClient.GetUser").
			Int64("user_id", userID).
			Msg("users service request failed")
		return models.UserProfile{}, mapTransportError("get user", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}
	if body.Data.ID != userID {
		return models.UserProfile{}, ErrInvalidResponse
	}

	return body.Data, nil
}
