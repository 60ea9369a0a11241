// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/configuration"
)

const sample = `
local M = {}

M.data_directory = "."
M.pidfile = "kittyd.pid"

M.database = {
    name = "cats.leveldb",
}

M.client_rpc = {
    maximum_connections = 50,
    listen = { "127.0.0.1:" .. rpc_port, "[::1]:" .. rpc_port },
}

M.publish = {
    broadcast = { "127.0.0.1:2135" },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        registry = "debug",
    },
}

return M
`

func writeFile(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "kittyd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGet(t *testing.T) {
	dir, fileName := writeFile(t, sample)
	defer os.RemoveAll(dir)

	dir, _ = filepath.EvalSymlinks(dir)
	fileName = filepath.Join(dir, "kittyd.conf")

	c, err := configuration.Get(fileName, map[string]string{"rpc_port": "2130"})
	assert.Nil(t, err, "get error")

	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "kittyd.pid"), c.PidFile, "pid file")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "cats.leveldb"), c.Database.Name, "database name")

	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "default certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), c.ClientRPC.PrivateKey, "default key")

	assert.Equal(t, []string{"127.0.0.1:2135"}, c.Publish.Broadcast, "broadcast")

	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "kittyd.log", c.Logging.File, "default log file")
	assert.Equal(t, "debug", c.Logging.Levels["registry"], "registry level")

	assert.True(t, configuration.FileExists(c.Database.Directory), "database directory not created")
	assert.True(t, configuration.FileExists(c.Logging.Directory), "log directory not created")
}

func TestGetRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing data directory", `return {}`},
		{"not a table", `return 42`},
		{"syntax error", `return {`},
		{"database path", `return { data_directory = ".", database = { name = "x/y.leveldb" } }`},
		{"absent directory", `return { data_directory = "/no/such/kittyd/directory" }`},
	}

	for _, item := range tests {
		dir, fileName := writeFile(t, item.content)
		_, err := configuration.Get(fileName, nil)
		assert.NotNil(t, err, item.name)
		os.RemoveAll(dir)
	}
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/a/b/c", configuration.EnsureAbsolute("/a", "b/c"), "relative")
	assert.Equal(t, "/x/y", configuration.EnsureAbsolute("/a", "/x/./y"), "absolute")
}
