// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinkgos/go-optolink/catalog"
	"github.com/thinkgos/go-optolink/protocol"
	"github.com/thinkgos/go-optolink/vcontrol"
)

// scanBlock bounds one raw read; reads larger than 119 bytes stall some
// controllers.
const scanBlock = 119

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "probe the whole address space and dump non-empty regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEndpoint()
			if err != nil {
				return err
			}
			defer e.Close()

			cfg := protocol.DefaultConfig()
			proto := protocol.Detect(e, cfg)
			if proto == protocol.None {
				return errors.New("no protocol detected")
			}
			engine, err := protocol.New(proto, cfg)
			if err != nil {
				return err
			}

			content := make([]byte, 0, 1<<16)
			buf := make([]byte, scanBlock)
			for addr := 0; addr < 1<<16; {
				fmt.Fprintf(os.Stderr, "\r%d/%d (0x%04X)", addr, 1<<16, addr)

				n := len(buf)
				if remain := 1<<16 - addr; remain < n {
					n = remain
				}

				if err := engine.Get(e, uint16(addr), buf[:n]); err != nil {
					fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
					if err := engine.Negotiate(e); err != nil {
						return err
					}
					continue
				}

				content = append(content, buf[:n]...)
				addr += n
			}
			fmt.Fprintln(os.Stderr)

			vc, err := vcontrol.Connect(e)
			if err != nil {
				return err
			}

			annotate(content, vc)
			return nil
		},
	}
}

// annotate prints the non-empty regions of the scanned image, naming the
// addresses covered by known commands.
func annotate(content []byte, vc *vcontrol.VControl) {
	known := make(map[uint16]annotation)
	for name, command := range catalog.SystemCommands() {
		known[command.Addr] = annotation{name, command.BlockLen}
	}
	for name, command := range vc.Device().Commands() {
		known[command.Addr] = annotation{name, command.BlockLen}
	}

	for i := 0; i < len(content); {
		if a, ok := known[uint16(i)]; ok && i+a.blockLen <= len(content) {
			block := content[i : i+a.blockLen]
			if !allFF(block) {
				fmt.Printf("%04X (%s): % X\n", i, a.name, block)
			}
			i += a.blockLen
			continue
		}

		if b := content[i]; b != 0xff && b != 0x00 {
			fmt.Printf("%04X (unknown): %02X\n", i, b)
		}
		i++
	}
}

type annotation struct {
	name     string
	blockLen int
}

func allFF(b []byte) bool {
	for _, c := range b {
		if c != 0xff {
			return false
		}
	}
	return true
}
