// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the services.
//
// [NewStructValidator] drives go-playground/validator through the validate
// tags of the request models, reports fields by their JSON names, and adds
// the rules tags cannot express (an update must change at least one field).
// Every failure matches [ErrInvalidInput].
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
