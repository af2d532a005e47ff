// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build spscq_nochecks

package spscq

// checksEnabled is false under the spscq_nochecks build tag: commits skip
// the stale-reservation check and contract violations go undetected.
const checksEnabled = false
