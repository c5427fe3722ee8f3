// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

type metadata struct {
	file    string
	config  *Configuration // nil if there is no configuration file
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "symbol-cli"
	app.Usage = "build, sign and announce symbol transactions"
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
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/symbol-cli/symbol-cli.conf]",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " override the configured `NETWORK` [main|test|private|private_test|mijin|mijin_test]",
		},
		cli.StringFlag{
			Name:  "generation-hash, g",
			Value: "",
			Usage: " override the configured generation `HASH`",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account, optionally storing it in the keystore",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "save, s",
					Value: "",
					Usage: " keep the account in the keystore as identity `NAME`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " use an existing private `KEY` instead of a random one",
				},
				cli.StringFlag{
					Name:  "public-key, P",
					Value: "",
					Usage: " keep only the public `KEY`, the identity cannot sign",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "list",
			Usage:  "list keystore identities",
			Action: runList,
		},
		{
			Name:      "address",
			Usage:     "display the address of an identity, public key or namespace",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "+hex public `KEY`",
				},
				cli.StringFlag{
					Name:  "namespace, N",
					Value: "",
					Usage: "+namespace `PATH` to alias",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+plain, pretty or hex `ADDRESS` to check",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "transfer",
			Usage:     "sign a transfer from the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*identity name or `ADDRESS` to receive",
				},
				cli.StringSliceFlag{
					Name:  "mosaic, m",
					Usage: " `ID:AMOUNT` to send, id is hex or a namespace path (repeatable)",
				},
				cli.StringFlag{
					Name:  "message, M",
					Value: "",
					Usage: " plain message `TEXT`",
				},
				cli.StringFlag{
					Name:  "encrypt, E",
					Value: "",
					Usage: " encrypt the message for the recipient's `PUBLIC-KEY`",
				},
				cli.IntFlag{
					Name:  "fee-multiplier, f",
					Value: -1,
					Usage: " fee `MULTIPLIER` [configured value]",
				},
				cli.DurationFlag{
					Name:  "deadline, d",
					Value: defaultDeadline,
					Usage: " time until the transaction expires `DURATION`",
				},
				cli.BoolFlag{
					Name:  "announce, A",
					Usage: " announce to the configured node",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "map",
			Usage:     "convert a REST transaction document to its binary payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*`FILE` holding the JSON document, - for stdin",
				},
			},
			Action: runMap,
		},
		{
			Name:      "decode",
			Usage:     "convert a binary payload to its REST document",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, P",
					Value: "",
					Usage: "*transaction payload `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "hash",
			Usage:     "compute the hash of a transaction payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, P",
					Value: "",
					Usage: "*transaction payload `HEX`",
				},
			},
			Action: runHash,
		},
		{
			Name:      "sign",
			Usage:     "sign a transaction payload with the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, P",
					Value: "",
					Usage: "*unsigned transaction payload `HEX`",
				},
				cli.BoolFlag{
					Name:  "announce, A",
					Usage: " announce to the configured node",
				},
				cli.BoolFlag{
					Name:  "store, s",
					Usage: " keep the result in the local store, bonded aggregates go to the partial pool",
				},
			},
			Action: runSign,
		},
		{
			Name:      "cosign",
			Usage:     "cosign an aggregate with the current identity",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+aggregate `HASH` to cosign",
				},
				cli.StringFlag{
					Name:  "payload, P",
					Value: "",
					Usage: "+signed aggregate payload `HEX` to cosign",
				},
				cli.StringFlag{
					Name:  "group, G",
					Value: "",
					Usage: " fetch the aggregate from the node `GROUP` [partial|unconfirmed|confirmed]",
				},
				cli.BoolFlag{
					Name:  "announce, A",
					Usage: " announce the cosignature to the configured node",
				},
				cli.BoolFlag{
					Name:  "store, s",
					Usage: " add the cosignature to the local partial store",
				},
			},
			Action: runCosign,
		},
		{
			Name:      "announce",
			Usage:     "announce a signed payload to the configured node",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payload, P",
					Value: "",
					Usage: "+signed transaction payload `HEX`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+`HASH` of a payload kept by sign --store",
				},
			},
			Action: runAnnounce,
		},
		{
			Name:      "lock",
			Usage:     "show the state of a hash lock or secret lock on the node",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: "+`HASH` of the aggregate a hash lock was made for",
				},
				cli.StringFlag{
					Name:  "composite, C",
					Value: "",
					Usage: "+composite `HASH` of a secret lock",
				},
				cli.StringFlag{
					Name:  "secret, S",
					Value: "",
					Usage: "+`SECRET` of a secret lock, with --recipient",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: " recipient `ADDRESS` or identity of a secret lock",
				},
			},
			Action: runLock,
		},
		{
			Name:      "listen",
			Usage:     "decode node notifications read one frame per line",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "-",
					Usage: " `FILE` of frames, - for stdin",
				},
				cli.StringSliceFlag{
					Name:  "channel, C",
					Usage: " subscribe to `CHANNEL` after the handshake (repeatable)",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " identity name or `ADDRESS` for account channels",
				},
				cli.BoolFlag{
					Name:  "store, s",
					Usage: " keep partials and cosignatures in the local store",
				},
			},
			Action: runListen,
		},
		{
			Name:  "partial",
			Usage: "manage the local store of bonded aggregates",
			Subcommands: []cli.Command{
				{
					Name:      "add",
					Usage:     "store a signed bonded aggregate",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "payload, P",
							Value: "",
							Usage: "*signed aggregate payload `HEX`",
						},
					},
					Action: runPartialAdd,
				},
				{
					Name:      "cosignature",
					Usage:     "add a cosignature document to a stored aggregate",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "file, f",
							Value: "",
							Usage: "*`FILE` holding the cosignature JSON, - for stdin",
						},
					},
					Action: runPartialCosignature,
				},
				{
					Name:  "list",
					Usage: "list stored aggregates",
					Flags: []cli.Flag{
						cli.IntFlag{
							Name:  "count, c",
							Value: 20,
							Usage: " maximum records to output `COUNT`",
						},
					},
					Action: runPartialList,
				},
				{
					Name:      "complete",
					Usage:     "attach the stored cosignatures, signing again as the current identity",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "hash, H",
							Value: "",
							Usage: "*aggregate `HASH`",
						},
						cli.BoolFlag{
							Name:  "remove, R",
							Usage: " delete from the store when complete",
						},
					},
					Action: runPartialComplete,
				},
				{
					Name:      "delete",
					Usage:     "remove a stored aggregate and its cosignatures",
					ArgsUsage: "\n   (* = required)",
					Flags: []cli.Flag{
						cli.StringFlag{
							Name:  "hash, H",
							Value: "",
							Usage: "*aggregate `HASH`",
						},
					},
					Action: runPartialDelete,
				},
				{
					Name:  "expire",
					Usage: "remove stored aggregates past their deadline",
					Flags: []cli.Flag{
						cli.BoolFlag{
							Name:  "watch, W",
							Usage: " keep running, sweeping every expiry interval until interrupted",
						},
					},
					Action: runPartialExpire,
				},
			},
		},
		{
			Name:  "version",
			Usage: "display symbol-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		file := c.GlobalString("config")
		explicit := "" != file
		if !explicit {
			p := os.Getenv("XDG_CONFIG_HOME")
			if "" == p {
				p = path.Join(os.Getenv("HOME"), ".config")
			}
			file = path.Join(p, app.Name, app.Name+".conf")
		}
		m.file = file

		if !util.RegularFileExists(file) {
			if explicit {
				return fmt.Errorf("configuration file: %q does not exist", file)
			}
			if verbose {
				fmt.Fprintf(e, "no configuration file: %s\n", file)
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}
		m.config = configuration

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		m.logging = true

		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  command: %s", version, command)
		log.Debugf("configuration: %+v", configuration)

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
