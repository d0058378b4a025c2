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

// ResponseTransform applies the curve of sp to each element.
// Processes min(len(input), len(output)) elements.
func ResponseTransform(input, output []float32, sp Species[float32]) {
	responseColumn(input, output, sp)
}

// ResponseTransform64 applies the curve of sp to each float64 element.
func ResponseTransform64(input, output []float64, sp Species[float64]) {
	responseColumn(input, output, sp)
}
