// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tokenmetadata/address"
	"github.com/bitmark-inc/tokenmetadata/storage"
)

type listItem struct {
	Address  address.Address `json:"address"`
	Owner    address.Address `json:"owner"`
	Lamports uint64          `json:"lamports"`
	Length   int             `json:"length"`
	Kind     string          `json:"kind"`
}

type listResult struct {
	Accounts []listItem       `json:"accounts"`
	Next     *address.Address `json:"next,omitempty"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	var start *address.Address
	if "" != c.String("start") {
		a, err := checkAddress(c, "start")
		if nil != err {
			return err
		}
		start = &a
	}

	// one extra to find the start of the next page
	infos, err := storage.FetchAccounts(start, count+1)
	if nil != err {
		return err
	}

	result := listResult{
		Accounts: make([]listItem, 0, count),
	}
	for i, info := range infos {
		if i == count {
			next := info.Key
			result.Next = &next
			break
		}
		d, err := describe(info)
		if nil != err {
			return err
		}
		result.Accounts = append(result.Accounts, listItem{
			Address:  d.Address,
			Owner:    d.Owner,
			Lamports: d.Lamports,
			Length:   d.Length,
			Kind:     d.Kind,
		})
	}

	return printJson(m.w, result)
}
