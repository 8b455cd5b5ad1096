// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"sync"
)

// Ref - a shared borrow of an account's data
type Ref struct {
	info *Info
	data []byte
	once sync.Once
}

// Data - the borrowed bytes, must not be retained after Release
func (r *Ref) Data() []byte {
	return r.data
}

// Release - end the borrow, safe to call more than once
func (r *Ref) Release() {
	r.once.Do(func() {
		r.info.release(false)
		r.data = nil
	})
}

// RefMut - an exclusive borrow of an account's data
type RefMut struct {
	info *Info
	data []byte
	once sync.Once
}

// Data - the borrowed bytes, writes go straight to the account
func (r *RefMut) Data() []byte {
	return r.data
}

// Release - end the borrow, safe to call more than once
func (r *RefMut) Release() {
	r.once.Do(func() {
		r.info.release(true)
		r.data = nil
	})
}
