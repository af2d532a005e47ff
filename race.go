// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spscq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent producer/consumer scenarios, which
// trigger false positives: the detector cannot observe the happens-before
// edges established by the acquire/release cursor protocol.
const RaceEnabled = true
