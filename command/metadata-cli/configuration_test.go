// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/tokenmetadata/address"
)

func writeConfiguration(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "metadata-cli.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return fileName
}

func TestConfigurationDefaults(t *testing.T) {
	dir, err := ioutil.TempDir("", "metadata-cli")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeConfiguration(t, dir, `return {}`)

	config, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, address.MetadataProgramID, config.programID, "program id")
	assert.Equal(t, filepath.Clean(dir), config.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "data"), config.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "metadata.leveldb"), config.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "log"), config.Logging.Directory, "log directory")
	assert.Equal(t, "metadata-cli.log", config.Logging.File, "log file")

	_, err = os.Stat(config.Logging.Directory)
	assert.Nil(t, err, "log directory created")
}

func TestConfigurationOverrides(t *testing.T) {
	dir, err := ioutil.TempDir("", "metadata-cli")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	programID := address.TokenProgramID.String()
	fileName := writeConfiguration(t, dir, `
local M = {}
M.program_id = "`+programID+`"
M.database = { directory = "ledger", name = "test.leveldb" }
M.logging = { size = 4096, count = 2, levels = { DEFAULT = "info" } }
return M
`)

	config, err := getConfiguration(fileName)
	require.Nil(t, err, "configuration")

	assert.Equal(t, address.TokenProgramID, config.programID, "program id")
	assert.Equal(t, filepath.Join(dir, "ledger", "test.leveldb"), config.Database.Name, "database")
	assert.Equal(t, 4096, config.Logging.Size, "log size")
	assert.Equal(t, "info", config.Logging.Levels["DEFAULT"], "log level")
}

func TestConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "metadata-cli")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	items := []string{
		`return { program_id = "not base58 0OIl" }`,
		`return { data_directory = "" }`,
		`return { data_directory = "/nonexistant/directory" }`,
		`return { database = { name = "sub/dir.leveldb" } }`,
		`return { logging = { file = "../escape.log" } }`,
	}

	for i, text := range items {
		fileName := writeConfiguration(t, dir, text)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: expected error for: %s", i, text)
	}
}
