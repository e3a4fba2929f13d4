// SPDX-License-Identifier: MIT

package engine

import "errors"

// ErrEventBufferFull is returned when the control queue to the render loop
// is full; the event is dropped rather than blocking the caller.
var ErrEventBufferFull = errors.New("event buffer full")
