/*
Package chira is a small interpreter for a whitespace-tokenized scripting
language with typed variables.

A Chira program is a sequence of lines, every line holding one or more
statements separated by ';'. Words of a statement are separated by single
spaces, operators included:

   int x = 5 ; x += 3 ; if x > 7 print x

This package holds the value types, the type registry and the error kinds
shared by the interpreter packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package chira

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

var (
	closersMutex sync.Mutex
	closers      []io.Closer
)

// AtExit registers c to be closed by Exit. Resources are closed in reverse
// order of registration.
func AtExit(c io.Closer) {
	closersMutex.Lock()
	defer closersMutex.Unlock()
	closers = append(closers, c)
}

func closeAll() {
	closersMutex.Lock()
	defer closersMutex.Unlock()
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i].Close()
	}
	closers = nil
}

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	closeAll()
	os.Exit(errcode)
}
