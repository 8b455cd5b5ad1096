// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/fault"
	"github.com/bitmark-inc/tokenmetadata/identity"
	"github.com/bitmark-inc/tokenmetadata/storage"
)

type metadata struct {
	config  *Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that only read the ledger
var readOnlyCommands = map[string]bool{
	"show": true,
	"list": true,
}

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "metadata-cli"
	app.Usage = "operate token metadata accounts in a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "metadata-cli.conf",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a signing key pair and its address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " existing hex `SEED`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create a metadata account for a mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint-authority, a",
					Value: "",
					Usage: "*signing mint authority `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: " signing payer `ADDRESS` [default mint authority]",
				},
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: " update authority `ADDRESS` [default mint authority]",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " asset symbol `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, r",
					Value: "",
					Usage: " asset json `URI`",
				},
				cli.IntFlag{
					Name:  "fee, f",
					Value: 0,
					Usage: " seller fee `BASIS-POINTS`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "transfer",
			Usage:     "hand the update authority of a metadata account to another address",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "+metadata account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "+mint `ADDRESS` of the metadata",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*signing current update authority `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*new update authority `ADDRESS`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "init",
			Usage:     "initialise a fixed layout token metadata account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*token metadata account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint-authority, a",
					Value: "",
					Usage: "*signing mint authority `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "update-authority, u",
					Value: "",
					Usage: " update authority `ADDRESS` [default mint authority]",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " token name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " token symbol `STRING`",
				},
				cli.StringFlag{
					Name:  "uri, r",
					Value: "",
					Usage: " token `URI`",
				},
			},
			Action: runInit,
		},
		{
			Name:      "update",
			Usage:     "set one field of a fixed layout token metadata account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*token metadata account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*signing update authority `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "field, f",
					Value: "",
					Usage: "*field to set `FIELD` [name|symbol|uri|key]",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " additional metadata `KEY` for field key",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " new `VALUE`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "remove",
			Usage:     "remove an additional metadata key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "*token metadata account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*signing update authority `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*additional metadata `KEY`",
				},
				cli.BoolFlag{
					Name:  "idempotent, i",
					Usage: " succeed if the key is absent",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "show",
			Usage:     "decode one account",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, A",
					Value: "",
					Usage: "+account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "+mint `ADDRESS` of the metadata",
				},
			},
			Action: runShow,
		},
		{
			Name:      "list",
			Usage:     "list stored accounts",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " start at account `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "derive",
			Usage:     "derive the program addresses of a mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mint `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "token, t",
					Value: "",
					Usage: " token account `ADDRESS` for the token record",
				},
			},
			Action: runDerive,
		},
		{
			Name:  "version",
			Usage: "display metadata-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the ledger
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "generate":
			return nil
		}

		file := c.GlobalString("config")
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(config.Logging)
		if nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  command: %s", version, command)

		if verbose {
			fmt.Fprintf(e, "program id: %s\n", config.programID)
			fmt.Fprintf(e, "database: %s\n", config.Database.Name)
		}

		err = initialiseServices(config, command)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:  config,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// close the ledger
	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); !ok {
			return nil
		}
		err := finaliseServices()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s\n", err)
	}
}

// start the process wide services, the logger must already be running
func initialiseServices(config *Configuration, command string) error {
	err := fault.Initialise()
	if nil != err {
		return err
	}

	err = identity.Initialise(config.programID)
	if nil != err {
		return err
	}

	// derivation does not touch the ledger
	if "derive" == command {
		return nil
	}
	return storage.Initialise(config.Database.Name, readOnlyCommands[command])
}

// stop everything initialiseServices started, in reverse order
func finaliseServices() error {
	storage.Finalise()
	err := identity.Finalise()
	fault.Finalise()
	return err
}
