// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--watch] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	var observer script.Observer = script.NewLogObserver(logger.New("script"))
	if len(options["verbose"]) > 0 {
		observer = &consoleObserver{
			w:    os.Stdout,
			next: observer,
		}
	}

	_, err = runScript(os.Stdout, &masterConfiguration.Script, observer)
	if nil != err {
		log.Criticalf("script failed: %s", err)
		exitwithstatus.Message("%s: script failed: %s", program, err)
	}

	if 0 == len(options["watch"]) {
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	fmt.Printf("\nwatching: %s  CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM) to stop…\n", configurationFile)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			fmt.Printf("\nreceived signal: %v\n", sig)
			break loop

		case <-watcher.RemoveChannel():
			log.Warnf("configuration: %q removed", configurationFile)
			fmt.Printf("\n%s: %s\n", configurationFile, fault.ErrWatcherStopped)
			break loop

		case <-watcher.ChangeChannel():
			conf, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("reload configuration error: %s", err)
				fmt.Printf("\nreload error: %s\n", err)
				continue loop
			}
			fmt.Printf("\nreloaded: %s\n", configurationFile)
			_, err = runScript(os.Stdout, &conf.Script, observer)
			if nil != err {
				log.Errorf("script failed: %s", err)
				fmt.Printf("script failed: %s\n", err)
			}
		}
	}
}
