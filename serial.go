// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package deleg

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing envelope identifier.
// Each dispatched envelope is assigned the next serial value.
type Serial = uint32

// counter is the global monotonic counter for envelope serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}

// outstanding counts envelopes whose teardown has not yet run: one unit per
// dispatched async-wait clone or fire-and-forget post, released by whichever
// side performs the final owner drop. Envelopes stranded in a discarded
// executor hold their unit forever.
var outstanding atomix.Int32

// Outstanding returns the number of dispatched envelopes not yet torn down.
// Intended for leak accounting in tests and shutdown diagnostics.
func Outstanding() int32 {
	return outstanding.Load()
}
