package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maksimkurb/keen-console/src/internal/store"
	_ "github.com/maksimkurb/keen-console/src/internal/store/drivers/bolt"
	_ "github.com/maksimkurb/keen-console/src/internal/store/drivers/memory"
)

const compactConfig = `{"enable":true,"records":[{"name":"router.lan","ttl":300}]}`

const formattedConfig = `{
  "enable": true,
  "records": [
    {
      "name": "router.lan",
      "ttl": 300
    }
  ]
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func run(t *testing.T, cmd Runner, ctx *AppContext, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx.Stdout = &out
	if err := cmd.Init(args, ctx); err != nil {
		return "", err
	}
	err := cmd.Run()
	return out.String(), err
}

func TestFmt_Stdout(t *testing.T) {
	file := writeFile(t, t.TempDir(), "app.json", compactConfig)

	out, err := run(t, CreateFmtCommand(), &AppContext{}, file)
	require.NoError(t, err)
	assert.Equal(t, formattedConfig, out)
	assert.Equal(t, compactConfig, readFile(t, file))
}

func TestFmt_Write(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "app.json", compactConfig)

	out, err := run(t, CreateFmtCommand(), &AppContext{}, "-w", "-l", file)
	require.NoError(t, err)
	assert.Equal(t, file+"\n", out)
	assert.Equal(t, formattedConfig, readFile(t, file))

	// formatted files are not listed again
	out, err = run(t, CreateFmtCommand(), &AppContext{}, "-l", file)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFmt_KeepsFileMode(t *testing.T) {
	file := writeFile(t, t.TempDir(), "app.json", compactConfig)
	require.NoError(t, os.Chmod(file, 0o640))

	_, err := run(t, CreateFmtCommand(), &AppContext{}, "-w", file)
	require.NoError(t, err)

	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm())
}

func TestFmt_InvalidAndEmpty(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.json", `{"a":`)
	blank := writeFile(t, dir, "blank.json", "// nothing yet\n")

	_, err := run(t, CreateFmtCommand(), &AppContext{}, "-w", blank, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), broken)
	assert.NotContains(t, err.Error(), blank)

	assert.Equal(t, "// nothing yet\n", readFile(t, blank))
	assert.Equal(t, `{"a":`, readFile(t, broken))
}

func TestFmt_Stdin(t *testing.T) {
	ctx := &AppContext{Stdin: strings.NewReader(compactConfig)}
	out, err := run(t, CreateFmtCommand(), ctx, "-")
	require.NoError(t, err)
	assert.Equal(t, formattedConfig, out)

	err = CreateFmtCommand().Init([]string{"-w", "-"}, &AppContext{})
	assert.Error(t, err)
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "set",
			args: []string{"set", `["records",0,"ttl"]`, "60"},
			want: `"ttl": 60`,
		},
		{
			name: "insert",
			args: []string{"insert", `["records"]`, `{"name":"nas.lan","ttl":30}`},
			want: `"name": "nas.lan"`,
		},
		{
			name: "remove",
			args: []string{"remove", `["records"]`, "0"},
			want: `"records": []`,
		},
		{
			name: "add synthesizes an item",
			args: []string{"add", `["records"]`},
			want: "    {\n      \"name\": \"\",\n      \"ttl\": 0\n    }\n  ]",
		},
		{
			name: "commit parses by field class",
			args: []string{"commit", `["enable"]`, "false"},
			want: `"enable": false`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := writeFile(t, t.TempDir(), "app.json", compactConfig)

			out, err := run(t, CreateEditCommand(), &AppContext{}, append([]string{file}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.True(t, strings.HasSuffix(out, "}\n"))
			assert.Equal(t, compactConfig, readFile(t, file))
		})
	}
}

func TestEdit_Write(t *testing.T) {
	file := writeFile(t, t.TempDir(), "app.json", compactConfig)

	out, err := run(t, CreateEditCommand(), &AppContext{}, "-w", file, "set", `["enable"]`, "false")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, readFile(t, file), `"enable": false`)
}

func TestEdit_Errors(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "app.json", compactConfig)
	broken := writeFile(t, dir, "broken.json", `{"a":`)

	initErrors := [][]string{
		{file, "set", `["enable"]`},
		{file, "add", `["records"]`, "1"},
		{file, "rename", `["enable"]`, "x"},
		{file, "set", `enable`, "1"},
		{"-w", "-", "set", `["enable"]`, "1"},
	}
	for _, args := range initErrors {
		err := CreateEditCommand().Init(args, &AppContext{})
		assert.Error(t, err, "%v", args)
	}

	runErrors := [][]string{
		{file, "set", `["missing","x"]`, "1"},
		{file, "remove", `["records"]`, "5"},
		{file, "remove", `["records"]`, "first"},
		{file, "set", `["enable"]`, "{"},
		{file, "commit", `["enable"]`, "maybe"},
		{file, "add", `["enable"]`},
		{broken, "set", `["a"]`, "1"},
	}
	for _, args := range runErrors {
		_, err := run(t, CreateEditCommand(), &AppContext{}, args...)
		assert.Error(t, err, "%v", args)
	}
	assert.Equal(t, compactConfig, readFile(t, file))
}

func TestShow_File(t *testing.T) {
	file := writeFile(t, t.TempDir(), "app.json", `{"enable":true,"port":53}`)

	out, err := run(t, CreateShowCommand(), &AppContext{}, file)
	require.NoError(t, err)
	assert.Equal(t, file+" (valid, revision 0)\n  Enable: true\n  Port: 53\n", out)

	out, err = run(t, CreateShowCommand(), &AppContext{}, "-paths", file)
	require.NoError(t, err)
	assert.Contains(t, out, `  Port: 53 ["port"]`)
}

func TestShow_Args(t *testing.T) {
	assert.Error(t, CreateShowCommand().Init(nil, &AppContext{}))
	assert.Error(t, CreateShowCommand().Init([]string{"-app", "x", "file.json"}, &AppContext{}))
}

func TestShow_FromStore(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "keen-console.conf", "[store]\ndriver = \"bolt\"\npath = \"console.db\"\n")

	st, err := store.Open("bolt", map[string]string{"path": filepath.Join(dir, "console.db")})
	require.NoError(t, err)
	require.NoError(t, st.SaveConfig(context.Background(), "Split Horizon", `{"enable":true}`))
	require.NoError(t, st.Close())

	out, err := run(t, CreateShowCommand(), &AppContext{ConfigPath: cfgPath}, "-app", "Split Horizon")
	require.NoError(t, err)
	assert.Equal(t, "Split Horizon (valid, revision 0)\n  Enable: true\n", out)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "keen-console.conf", "[store]\ndriver = \"memory\"\n")

	out, err := run(t, CreateCheckCommand(), &AppContext{ConfigPath: cfgPath}, "-skip-dns", "-dump")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration: ok")
	assert.Contains(t, out, "Configuration START")
	assert.Contains(t, out, "store: ok (memory, 0 apps)")
}

func TestCheck_InvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "keen-console.conf", "[store]\ndriver = \"postgres\"\n")

	err := CreateCheckCommand().Init(nil, &AppContext{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCheck_DNSUnreachable(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "keen-console.conf", `
[store]
driver = "memory"

[server]
dns_address = "127.0.0.1:1"
timeout_seconds = 1
`)

	out, err := run(t, CreateCheckCommand(), &AppContext{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, out, "store: ok")
	assert.NotContains(t, out, "dns: ok")
}

func TestServer_StopsOnSignal(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "keen-console.conf", "[store]\ndriver = \"memory\"\n")

	cmd := &ServerCommand{signals: make(chan os.Signal, 1)}
	require.NoError(t, cmd.Init([]string{"-bind", "127.0.0.1:0"}, &AppContext{ConfigPath: cfgPath}))

	done := make(chan error, 1)
	go func() { done <- cmd.Run() }()

	cmd.signals <- syscall.SIGTERM
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Args(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "keen-console.conf", "[general]\napi_bind_address = \"127.0.0.1:9053\"\n")

	cmd := &ServerCommand{}
	require.NoError(t, cmd.Init(nil, &AppContext{ConfigPath: cfgPath}))
	assert.Equal(t, "127.0.0.1:9053", cmd.bindAddr)

	cmd = &ServerCommand{}
	assert.Error(t, cmd.Init([]string{"-sweep-interval", "0s"}, &AppContext{ConfigPath: cfgPath}))
}

func TestStoreArgs(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "keen-console.conf", `
[store]
driver = "remote"

[server]
url = "http://192.168.1.1:5380"
token = "secret"
timeout_seconds = 3
`)
	cfg, err := loadAndValidateConfigOrFail(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"url":            "http://192.168.1.1:5380",
		"token":          "secret",
		"operation_path": "/api/{{operation}}",
		"timeout":        "3",
	}, storeArgs(cfg))
}
