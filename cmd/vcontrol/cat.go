// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/thinkgos/go-optolink/catalog"
)

func catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat",
		Short: "read all commands the device supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vc, err := openSession()
			if err != nil {
				return err
			}
			defer vc.Close()

			fmt.Fprintf(os.Stderr, "Connected to '%s' via %s protocol.\n", vc.Device().Name(), vc.Protocol())

			commands := make(map[string]*catalog.Command)
			for name, command := range catalog.SystemCommands() {
				commands[name] = command
			}
			for name, command := range vc.Device().Commands() {
				commands[name] = command
			}

			names := make([]string, 0, len(commands))
			for name := range commands {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				if !commands[name].Mode.IsRead() {
					continue
				}

				value, err := vc.Get(name)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s error: %v\n", name, err)
					continue
				}

				if value.Value.IsEmpty() {
					fmt.Printf("%s: <empty>\n", name)
				} else {
					fmt.Printf("%s: %s\n", name, value)
				}
			}
			return nil
		},
	}
}
