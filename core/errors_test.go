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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	sentinel := errors.New("signing failed")
	cause := errors.New("key not found")

	err := WrapError(sentinel, cause)

	assert.EqualError(t, err, "signing failed: key not found")
	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, cause)
	t.Run("wrapped again", func(t *testing.T) {
		outer := fmt.Errorf("issue: %w", err)
		assert.ErrorIs(t, outer, sentinel)
		assert.ErrorIs(t, outer, cause)
	})
	t.Run("nil cause", func(t *testing.T) {
		assert.EqualError(t, WrapError(sentinel, nil), "signing failed: %!s(<nil>)")
	})
}
