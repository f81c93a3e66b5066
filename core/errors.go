/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"errors"
	"fmt"
)

// WrapError returns an error that matches both err and cause with errors.Is.
// It is used to return a typed error (e.g. ErrLedgerPublishFailed) while keeping the lower layer error inspectable.
func WrapError(err error, cause error) error {
	return causedError{kind: err, cause: cause}
}

type causedError struct {
	kind  error
	cause error
}

// Error formats with %s, so a nil kind or cause doesn't panic.
func (c causedError) Error() string {
	return fmt.Sprintf("%s: %s", c.kind, c.cause)
}

func (c causedError) Is(target error) bool {
	return errors.Is(c.kind, target)
}

func (c causedError) Unwrap() error {
	return c.cause
}
