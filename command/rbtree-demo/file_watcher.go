// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/redblack/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// FileWatcher - notify when the script file is written or removed
type FileWatcher interface {
	Start() error
	Stop()
	ChangeChannel() <-chan struct{}
	RemoveChannel() <-chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (FileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// ChangeChannel - receives after each write to the file
func (w *fileWatcher) ChangeChannel() <-chan struct{} {
	return w.change
}

// RemoveChannel - receives once when the file goes away
func (w *fileWatcher) RemoveChannel() <-chan struct{} {
	return w.remove
}

// Start - begin watching in the background
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(w.filePath)
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()

	return nil
}

// Stop - release the underlying watcher, ends the background loop
func (w *fileWatcher) Stop() {
	err := w.watcher.Close()
	if nil != err {
		w.log.Warnf("watcher close error: %s", err)
	}
}

func (w *fileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.log.Info("event channel closed")
				return
			}
			w.log.Infof("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Infof("file %s not match, discard event", event.Name)
				continue
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed, stop", w.filePath)
				w.sendEvent(w.remove, "remove")
				return
			}

			if watcherEventFileChange(event) {
				w.log.Debug("sending file change event")
				w.sendEvent(w.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if len(ch) < cap(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write
}
