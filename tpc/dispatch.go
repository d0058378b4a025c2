// Copyright 2025 go-thermal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tpc

import (
	"os"
	"unsafe"
)

// DispatchLevel identifies the column kernel selected for this process.
//
// Both kernels are pure Go. A level above DispatchScalar names the widest
// vector unit the CPU reports and only sets the block width of the blocked
// kernel; no vector instructions are emitted by this package.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	}
	return "unknown"
}

// Set once by the per-architecture init functions.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level chosen at init time.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the block width in bytes.
func CurrentWidth() int { return currentWidth }

// CurrentName returns a short name for the dispatch level, such as "avx2".
// The name reports the block width in use, not a vector instruction set
// that the kernel executes.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether TPC_NO_SIMD is set, which pins the scalar kernel.
func NoSimdEnv() bool {
	return os.Getenv("TPC_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep a nominal width so Lanes stays meaningful
	currentName = "scalar"
}

// Lanes returns how many samples of T fit in one block at the current
// dispatch width.
func Lanes[T Floats]() int {
	var zero T
	return max(1, currentWidth/int(unsafe.Sizeof(zero)))
}

// responseColumn runs the kernel selected for this process.
func responseColumn[T Floats](temps, out []T, sp Species[T]) {
	if currentLevel == DispatchScalar {
		BaseResponse(temps, out, sp)
		return
	}
	blockedResponse(temps, out, sp, Lanes[T]())
}
