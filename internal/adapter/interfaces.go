// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the sibling fundoo services.
//
// The notes and labels services resolve callers and profiles through
// [IdentityResolver] (the users service), and the notes service checks label
// existence through [LabelLookup] (the labels service). Both are HTTP/REST
// clients built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is]. Every transport failure,
// timeout and 5xx answer is reported as [ErrUnavailable].
package adapter

import (
	"context"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// IdentityResolver resolves credentials and user ids against the users service.
type IdentityResolver interface {
	// Authenticate validates a bearer token and returns the profile of its
	// owner. An invalid or expired token yields [ErrUnauthorized].
	Authenticate(ctx context.Context, token string) (models.UserProfile, error)

	// GetUser returns the public profile of userID, or [ErrNotFound].
	GetUser(ctx context.Context, userID int64) (models.UserProfile, error)
}

// LabelLookup reports which label ids exist in the labels service.
type LabelLookup interface {
	// LookupLabels returns the labels among ids that exist, in any order.
	// Unknown ids are absent from the result. The caller's token stored in
	// ctx is forwarded.
	LookupLabels(ctx context.Context, ids []int64) ([]models.Label, error)
}
