// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect  string
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "lotledger-cli"
	app.Usage = "record and trace coffee lots on a lotledgerd"
	app.Version = version
	app.HideVersion = true
	app.Metadata = make(map[string]interface{})

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " lotledgerd host/IP and port, `HOST:PORT`",
			EnvVar: "LOTLEDGER_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " caller identity `BASE58` as shown by generate",
			EnvVar: "LOTLEDGER_IDENTITY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an ed25519 key pair and its identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "register",
			Usage:     "register the identity so it can create and update lots",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runRegister,
		},
		{
			Name:      "create",
			Usage:     "create a new coffee lot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "farmer, f",
					Value: "",
					Usage: "*farmer name `STRING`",
				},
				cli.StringFlag{
					Name:  "harvest-date, d",
					Value: "",
					Usage: "*date of harvest `DATE`",
				},
				cli.StringFlag{
					Name:  "location, l",
					Value: "",
					Usage: "*farm or region `STRING`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "update",
			Usage:     "append a status update to a lot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "lot, l",
					Value: 0,
					Usage: "*lot identifier `ID`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*new status `STRING`",
				},
				cli.StringFlag{
					Name:  "details, d",
					Value: "",
					Usage: " free text details `STRING`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "get",
			Usage:     "display a lot and its updates",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "lot, l",
					Value: 0,
					Usage: "*lot identifier `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "list",
			Usage:     "list lots in identifier order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start from lot `ID`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`, 0 for all",
				},
			},
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display lotledgerd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display lotledger-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			identity: c.GlobalString("identity"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	return app
}
