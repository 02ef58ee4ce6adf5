// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// vcontrol is the command line front end of the Optolink driver.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thinkgos/go-optolink/optolink"
	"github.com/thinkgos/go-optolink/vcontrol"
	"github.com/thinkgos/go-optolink/vdata"
	"github.com/thinkgos/go-optolink/web"
)

var (
	flagDevice string
	flagHost   string
	flagPort   uint16
)

func openEndpoint() (optolink.Endpoint, error) {
	switch {
	case flagDevice != "":
		return optolink.Open(flagDevice)
	case flagPort != 0:
		host := flagHost
		if host == "" {
			host = "localhost"
		}
		return optolink.Connect(host, flagPort)
	}
	return nil, errors.New("either --device or --port is required")
}

func openSession() (*vcontrol.VControl, error) {
	e, err := openEndpoint()
	if err != nil {
		return nil, err
	}
	vc, err := vcontrol.Connect(e)
	if err != nil {
		e.Close()
		return nil, err
	}
	return vc, nil
}

func main() {
	root := &cobra.Command{
		Use:           "vcontrol",
		Short:         "control and telemetry driver for Optolink heating controllers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flagDevice, "device", "d", "", "path of the serial device")
	root.PersistentFlags().StringVarP(&flagHost, "host", "H", "", "hostname or IP address of the device (default: localhost)")
	root.PersistentFlags().Uint16VarP(&flagPort, "port", "p", 0, "port of the device")
	root.MarkFlagsMutuallyExclusive("device", "host")
	root.MarkFlagsMutuallyExclusive("device", "port")

	root.AddCommand(getCmd(), setCmd(), catCmd(), scanCmd(), serverCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <command>",
		Short: "get value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vc, err := openSession()
			if err != nil {
				return err
			}
			defer vc.Close()

			value, err := vc.Get(args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <command> <value>",
		Short: "set value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vc, err := openSession()
			if err != nil {
				return err
			}
			defer vc.Close()

			var value vdata.Value
			if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
				value = vdata.Parse(args[1])
			}
			return vc.Set(args[0], value)
		},
	}
}

func serverCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "server",
		Short: "expose the session over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vc, err := openSession()
			if err != nil {
				return err
			}
			defer vc.Close()

			return web.New(vc).Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "listen", ":8888", "listen address")
	return cmd
}
