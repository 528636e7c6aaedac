// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package version

import (
	"testing"
)

func BenchmarkParseDescriptorVersion(b *testing.B) {
	tests := []string{
		"2.0.1xfoo-extra",
		"0.0.1x1.2.3-SNAPSHOT",
		"10.20.30xbar",
		"2.0.1-broken",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = ParseDescriptorVersion(input)
	}
}

func BenchmarkTrimSuffixOnce(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TrimSuffixOnce("1.2.3-SNAPSHOT", SnapshotSuffix)
	}
}

func BenchmarkDescriptorVersionString(b *testing.B) {
	d, err := ParseDescriptorVersion("2.0.1xfoo-extra")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}
