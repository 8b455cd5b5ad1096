// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - the program's own address
//
// set once at start up, every owner check compares against it
package identity

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/fault"
)

var globalData struct {
	sync.RWMutex
	log       *logger.L
	programID address.Address

	// set once during initialise
	initialised bool
}

// Initialise - fix the program address for the life of the process
func Initialise(programID address.Address) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if programID.IsZero() {
		return fault.ErrInvalidProgramID
	}

	globalData.log = logger.New("identity")
	globalData.log.Infof("program id: %s", programID)

	globalData.programID = programID
	globalData.initialised = true

	return nil
}

// Finalise - forget the program address
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.programID = address.Address{}
	globalData.initialised = false

	return nil
}

// ProgramID - the program address, zero before initialisation
//
// owner checks must use IsProgramOwned so that an uninitialised
// process never matches system owned accounts
func ProgramID() address.Address {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.programID
}

// IsInitialised - true after a successful Initialise
func IsInitialised() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised
}

// IsProgramOwned - true if the owner is this program
func IsProgramOwned(owner address.Address) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.initialised && owner == globalData.programID
}
