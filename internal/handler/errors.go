// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// configuration carries no HTTP address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoAuthenticator is returned when no token resolver is supplied.
	errNoAuthenticator = errors.New("no authenticator provided")

	// errRoleWithoutRoutes is returned for roles that serve no HTTP API,
	// such as the reminder worker or the migrator.
	errRoleWithoutRoutes = errors.New("role serves no HTTP routes")
)
