// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
)

var errNoServersAreCreated = errors.New("no servers are created")

var (
	errNilRouter    = fmt.Errorf("%w: router is nil", errNoServersAreCreated)
	errEmptyAddress = fmt.Errorf("%w: http address is empty", errNoServersAreCreated)
)
