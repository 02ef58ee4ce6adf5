// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package protocol

import (
	"fmt"
	"time"

	"github.com/thinkgos/go-optolink/optolink"
)

// Short protocol requests. The controller periodically emits Sync (0x05)
// as a solicitation; the host answers with a request immediately after.
const (
	kwHead      byte = 0x01
	kwReadData  byte = 0xf7
	kwWriteData byte = 0xf4

	kwWriteAck byte = 0x00
)

// kwNegotiate nudges the controller to get a faster Sync.
func (sf *Engine) kwNegotiate(e optolink.Endpoint) error {
	if _, err := e.Write([]byte{Reset}); err != nil {
		return err
	}
	return e.Flush()
}

// kwSync waits for the controller's Sync solicitation, nudging it with
// Reset. On success the input buffer is purged so the request response
// is not polluted by further solicitations.
func (sf *Engine) kwSync(e optolink.Endpoint) error {
	buf := make([]byte, 1)
	start := time.Now()
	for {
		if err := sf.kwNegotiate(e); err != nil {
			return err
		}

		if err := e.ReadFull(buf); err == nil && buf[0] == Sync {
			return e.Purge()
		}

		if time.Since(start) > sf.cfg.Timeout {
			return fmt.Errorf("kw: sync: %w", optolink.ErrTimeout)
		}
	}
}

func (sf *Engine) kwGet(e optolink.Endpoint, addr uint16, buf []byte) error {
	req := []byte{kwHead, kwReadData, byte(addr >> 8), byte(addr), byte(len(buf))}

	if err := sf.kwSync(e); err != nil {
		return err
	}

	start := time.Now()
	for {
		sf.Wire("KW TX", req)
		if _, err := e.Write(req); err != nil {
			return err
		}
		if err := e.Flush(); err != nil {
			return err
		}

		began := time.Now()
		if err := e.ReadFull(buf); err != nil {
			return err
		}
		sf.Wire("KW RX", buf)

		// A response of nothing but Sync bytes is ambiguous with the
		// controller's solicitations. Accept it only when it arrived
		// faster than solicitations are emitted.
		if !allSync(buf) {
			return nil
		}
		if time.Since(began) < sf.cfg.SyncThreshold*time.Duration(len(buf)) {
			return nil
		}
		if err := e.Purge(); err != nil {
			return err
		}

		if time.Since(start) > sf.cfg.Timeout {
			return fmt.Errorf("kw: get 0x%04X: %w", addr, optolink.ErrTimeout)
		}
	}
}

func (sf *Engine) kwSet(e optolink.Endpoint, addr uint16, value []byte) error {
	req := make([]byte, 0, 5+len(value))
	req = append(req, kwHead, kwWriteData, byte(addr>>8), byte(addr), byte(len(value)))
	req = append(req, value...)

	if err := sf.kwSync(e); err != nil {
		return err
	}

	start := time.Now()
	for {
		sf.Wire("KW TX", req)
		if _, err := e.Write(req); err != nil {
			return err
		}
		if err := e.Flush(); err != nil {
			return err
		}

		ack := make([]byte, 1)
		if err := e.ReadFull(ack); err != nil {
			return err
		}
		if ack[0] == kwWriteAck {
			return nil
		}

		if time.Since(start) > sf.cfg.Timeout {
			return fmt.Errorf("kw: set 0x%04X: %w", addr, optolink.ErrTimeout)
		}
	}
}

func allSync(b []byte) bool {
	for _, c := range b {
		if c != Sync {
			return false
		}
	}
	return true
}
