// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !spscq_nochecks

package spscq

// checksEnabled gates the commit-time stale-reservation check.
// Enabled by default; build with -tags spscq_nochecks to trade the check
// away for speed once the producer/consumer discipline is trusted.
const checksEnabled = true
