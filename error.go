// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import (
	"errors"
)

// ErrTimeout reports that a dispatched call produced no completion signal
// within the bound. It is the Left value of [Delegate.CallEither]; the plain
// [Delegate.Call] surface reports the same outcome via [Delegate.Succeeded].
var ErrTimeout = errors.New("deleg: wait timeout")

// ErrClosed reports a dispatch into a closed [Worker]. At the call layer it
// is indistinguishable from a timeout: the call simply did not run.
var ErrClosed = errors.New("deleg: executor closed")
