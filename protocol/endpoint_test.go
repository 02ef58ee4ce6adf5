// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package protocol

import (
	"fmt"
	"time"

	"github.com/thinkgos/go-optolink/optolink"
)

// testEndpoint replays a script of read results and records every write.
// Each ReadFull call consumes one script step, whose byte count must
// match the requested read size.
type testEndpoint struct {
	steps   []interface{} // []byte or error
	written []byte
	purges  int
	timeout time.Duration
}

var _ optolink.Endpoint = (*testEndpoint)(nil)

func newTestEndpoint(steps ...interface{}) *testEndpoint {
	return &testEndpoint{steps: steps, timeout: time.Second}
}

func (sf *testEndpoint) ReadFull(buf []byte) error {
	if len(sf.steps) == 0 {
		return fmt.Errorf("read: %w", optolink.ErrTimeout)
	}
	step := sf.steps[0]
	sf.steps = sf.steps[1:]

	switch step := step.(type) {
	case []byte:
		if len(step) != len(buf) {
			return fmt.Errorf("script step of %d bytes, read wants %d", len(step), len(buf))
		}
		copy(buf, step)
		return nil
	case error:
		return step
	}
	return fmt.Errorf("bad script step %T", step)
}

func (sf *testEndpoint) Write(p []byte) (int, error) {
	sf.written = append(sf.written, p...)
	return len(p), nil
}

func (sf *testEndpoint) Flush() error { return nil }

func (sf *testEndpoint) Purge() error {
	sf.purges++
	return nil
}

func (sf *testEndpoint) Reinitialize() error { return nil }
func (sf *testEndpoint) Close() error        { return nil }

func (sf *testEndpoint) SetTimeout(d time.Duration) { sf.timeout = d }
func (sf *testEndpoint) Timeout() time.Duration     { return sf.timeout }

// testConfig keeps failing loops short.
func testConfig() Config {
	return Config{Timeout: time.Second, SyncThreshold: 500 * time.Millisecond}
}
