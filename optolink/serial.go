// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package optolink

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// serial line parameters required by the controller: 4800 bps, 8 data
// bits, even parity, 2 stop bits, no flow control.
var serialMode = &serial.Mode{
	BaudRate: 4800,
	DataBits: 8,
	Parity:   serial.EvenParity,
	StopBits: serial.TwoStopBits,
}

const (
	reopenAttempts = 10
	reopenDelay    = time.Second
)

// Serial is an Endpoint over a local serial port.
type Serial struct {
	port    serial.Port
	name    string
	timeout time.Duration
}

var _ Endpoint = (*Serial)(nil)

// Open opens the named serial port with the controller line parameters.
func Open(name string) (*Serial, error) {
	port, err := serial.Open(name, serialMode)
	if err != nil {
		return nil, fmt.Errorf("optolink: open %s: %w", name, err)
	}
	return &Serial{port: port, name: name, timeout: DefaultTimeout}, nil
}

// ReadFull reads exactly len(buf) bytes or fails with ErrTimeout.
func (sf *Serial) ReadFull(buf []byte) error {
	deadline := time.Now().Add(sf.timeout)
	for n := 0; n < len(buf); {
		remain := time.Until(deadline)
		if remain <= 0 {
			return timeoutErr("read")
		}
		if err := sf.port.SetReadTimeout(remain); err != nil {
			return err
		}
		cnt, err := sf.port.Read(buf[n:])
		if err != nil {
			return err
		}
		if cnt == 0 { // expired read timeout
			return timeoutErr("read")
		}
		n += cnt
	}
	return nil
}

func (sf *Serial) Write(p []byte) (int, error) { return sf.port.Write(p) }

// Flush blocks until all buffered output has been transmitted.
func (sf *Serial) Flush() error { return sf.port.Drain() }

// Purge discards all pending input.
func (sf *Serial) Purge() error { return sf.port.ResetInputBuffer() }

// Reinitialize closes and reopens the port. The controller may assert DTR
// transitions that invalidate the descriptor, so the reopen is retried.
func (sf *Serial) Reinitialize() error {
	_ = sf.port.Close()

	var err error
	for i := 0; i < reopenAttempts; i++ {
		var port serial.Port
		port, err = serial.Open(sf.name, serialMode)
		if err == nil {
			sf.port = port
			return nil
		}
		time.Sleep(reopenDelay)
	}
	return fmt.Errorf("optolink: reinitialize %s: %w", sf.name, err)
}

func (sf *Serial) Close() error { return sf.port.Close() }

func (sf *Serial) SetTimeout(d time.Duration) { sf.timeout = d }
func (sf *Serial) Timeout() time.Duration     { return sf.timeout }
