// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package protocol

import (
	"fmt"
	"time"

	"github.com/thinkgos/go-optolink/optolink"
)

// VS2 telegram framing
//
//	| leadin | length |      payload      | checksum |
//	|  0x41  |   L    | P0 P1 ... P(L-1)  |    C     |
//
// C = (L + ΣPi) mod 256. The receiver acknowledges a good checksum with
// Ack and a bad one with Nack.
const (
	vs2Leadin byte = 0x41

	vs2Request  byte = 0x00
	vs2Response byte = 0x01
)

// negotiation start sequence sent after the controller's Sync
var vs2Start = []byte{0x16, 0x00, 0x00}

// VS2 payload function codes. Only virtual read and virtual write are
// exercised by command transactions.
const (
	fnVirtualRead              byte = 1
	fnVirtualWrite             byte = 2
	fnPhysicalRead             byte = 3
	fnPhysicalWrite            byte = 4
	fnEepromRead               byte = 5
	fnEepromWrite              byte = 6
	fnRemoteProcedureCall      byte = 7
	fnVirtualMbus              byte = 33
	fnVirtualMarketManagerRead byte = 34
	fnVirtualMarketManagerWrit byte = 35
	fnVirtualWiloRead          byte = 36
	fnVirtualWiloWrite         byte = 37
	fnXramRead                 byte = 49
	fnXramWrite                byte = 50
	fnPortRead                 byte = 51
	fnPortWrite                byte = 52
	fnBeRead                   byte = 53
	fnBeWrite                  byte = 54
	fnKmbusRamRead             byte = 65
	fnKmbusEepromRead          byte = 67
	fnKbusDataelementRead      byte = 81
	fnKbusDataelementWrite     byte = 82
	fnKbusDatablockRead        byte = 83
	fnKbusDatablockWrite       byte = 84
	fnKbusTransparentRead      byte = 85
	fnKbusTransparentWrite     byte = 86
	fnKbusInitializationRead   byte = 87
	fnKbusInitializationWrite  byte = 88
	fnKbusEepromLtRead         byte = 89
	fnKbusEepromLtWrite        byte = 90
	fnKbusControlWrite         byte = 91
	fnKbusMemberlistRead       byte = 93
	fnKbusMemberlistWrite      byte = 94
	fnKbusVirtualRead          byte = 95
	fnKbusVirtualWrite         byte = 96
	fnKbusDirectRead           byte = 97
	fnKbusDirectWrite          byte = 98
	fnKbusIndirectRead         byte = 99
	fnKbusIndirectWrite        byte = 100
	fnKbusGatewayRead          byte = 101
	fnKbusGatewayWrite         byte = 102
	fnProcessWrite             byte = 120
	fnProcessRead              byte = 123
	fnOtPhysicalRead           byte = 180
	fnOtVirtualRead            byte = 181
	fnOtPhysicalWrite          byte = 182
	fnOtVirtualWrite           byte = 183
	fnGfaRead                  byte = 201
	fnGfaWrite                 byte = 202
)

// vs2Checksum computes the telegram checksum over length and payload.
func vs2Checksum(payload []byte) byte {
	sum := byte(len(payload))
	for _, b := range payload {
		sum += b
	}
	return sum
}

// vs2WriteTelegram frames and sends the payload, retrying on Nack until
// the timeout elapses.
func (sf *Engine) vs2WriteTelegram(e optolink.Endpoint, payload []byte) error {
	telegram := make([]byte, 0, len(payload)+3)
	telegram = append(telegram, vs2Leadin, byte(len(payload)))
	telegram = append(telegram, payload...)
	telegram = append(telegram, vs2Checksum(payload))

	start := time.Now()
	for {
		sf.Wire("VS2 TX", telegram)
		if _, err := e.Write(telegram); err != nil {
			return err
		}
		if err := e.Flush(); err != nil {
			return err
		}

		status := make([]byte, 1)
		if err := e.ReadFull(status); err != nil {
			return err
		}
		switch status[0] {
		case Ack:
			return nil
		case Nack:
		default:
			return fmt.Errorf("vs2: send telegram failed, status 0x%02X", status[0])
		}

		if time.Since(start) > sf.cfg.Timeout {
			return fmt.Errorf("vs2: send telegram: %w", optolink.ErrTimeout)
		}
	}
}

// vs2ReadTelegram receives one telegram, answering Ack on a good
// checksum and Nack (then retrying) on a bad one.
func (sf *Engine) vs2ReadTelegram(e optolink.Endpoint) ([]byte, error) {
	buf := make([]byte, 1)

	start := time.Now()
	for {
		if err := e.ReadFull(buf); err != nil {
			return nil, err
		}
		if buf[0] != vs2Leadin {
			return nil, fmt.Errorf("vs2: telegram leadin expected, got 0x%02X", buf[0])
		}

		if err := e.ReadFull(buf); err != nil {
			return nil, err
		}
		payload := make([]byte, buf[0])
		if err := e.ReadFull(payload); err != nil {
			return nil, err
		}

		if err := e.ReadFull(buf); err != nil {
			return nil, err
		}
		sf.Wire("VS2 RX", payload)
		if vs2Checksum(payload) == buf[0] {
			if _, err := e.Write([]byte{Ack}); err != nil {
				return nil, err
			}
			return payload, e.Flush()
		}

		sf.Warn("VS2 checksum mismatch, got 0x%02X", buf[0])
		if _, err := e.Write([]byte{Nack}); err != nil {
			return nil, err
		}
		if err := e.Flush(); err != nil {
			return nil, err
		}

		if time.Since(start) > sf.cfg.Timeout {
			return nil, fmt.Errorf("vs2: read telegram: %w", optolink.ErrTimeout)
		}
	}
}

// vs2Negotiate resets the link and performs the start handshake:
// host Reset, controller Sync, host start sequence, controller Ack.
func (sf *Engine) vs2Negotiate(e optolink.Endpoint) error {
	if _, err := e.Write([]byte{Reset}); err != nil {
		return err
	}
	if err := e.Flush(); err != nil {
		return err
	}

	status := make([]byte, 1)
	start := time.Now()
	for {
		if time.Since(start) > sf.cfg.Timeout {
			return fmt.Errorf("vs2: negotiate: %w", optolink.ErrTimeout)
		}

		if err := e.ReadFull(status); err != nil {
			return err
		}
		if status[0] != Sync {
			continue
		}

		if _, err := e.Write(vs2Start); err != nil {
			return err
		}
		if err := e.Flush(); err != nil {
			return err
		}

		if err := e.ReadFull(status); err != nil {
			return err
		}
		switch status[0] {
		case Ack:
			return nil
		case Nack:
		default:
			return fmt.Errorf("%w: start answered 0x%02X", ErrNegotiation, status[0])
		}
	}
}

func (sf *Engine) vs2Get(e optolink.Endpoint, addr uint16, buf []byte) error {
	request := []byte{vs2Request, fnVirtualRead, byte(addr >> 8), byte(addr), byte(len(buf))}
	if err := sf.vs2WriteTelegram(e, request); err != nil {
		return err
	}

	response, err := sf.vs2ReadTelegram(e)
	if err != nil {
		return err
	}

	if len(response) != 5+len(buf) {
		return fmt.Errorf("vs2: get 0x%04X: unexpected response length %d", addr, len(response))
	}
	if response[0] != vs2Response || response[1] != fnVirtualRead {
		return fmt.Errorf("vs2: get 0x%04X: invalid read data response", addr)
	}
	if response[2] != byte(addr>>8) || response[3] != byte(addr) {
		return fmt.Errorf("vs2: get 0x%04X: wrong address echo", addr)
	}
	if response[4] != byte(len(buf)) {
		return fmt.Errorf("vs2: get 0x%04X: wrong data length", addr)
	}

	copy(buf, response[5:])
	return nil
}

func (sf *Engine) vs2Set(e optolink.Endpoint, addr uint16, value []byte) error {
	request := make([]byte, 0, 5+len(value))
	request = append(request, vs2Request, fnVirtualWrite, byte(addr>>8), byte(addr), byte(len(value)))
	request = append(request, value...)
	if err := sf.vs2WriteTelegram(e, request); err != nil {
		return err
	}

	response, err := sf.vs2ReadTelegram(e)
	if err != nil {
		return err
	}

	if len(response) != 5 {
		return fmt.Errorf("vs2: set 0x%04X: unexpected response length %d", addr, len(response))
	}
	if response[0] != vs2Response || response[1] != fnVirtualWrite {
		return fmt.Errorf("vs2: set 0x%04X: invalid write data response", addr)
	}
	if response[2] != byte(addr>>8) || response[3] != byte(addr) {
		return fmt.Errorf("vs2: set 0x%04X: wrong address echo", addr)
	}
	if response[4] != byte(len(value)) {
		return fmt.Errorf("vs2: set 0x%04X: could not write data", addr)
	}

	return nil
}
