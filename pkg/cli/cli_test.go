/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/nictagadm/pkg/nictag"
)

const testConfig = `# provisioning config
admin_nic=00:11:22:AA:BB:CC
external_nic=0:1:2:3:4:5
storage_nic=not-a-mac
etherstub=stub0,stub1
garbage line
root_shadow=$6$secret
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name}, args...))
}

func readOutput(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return b
}

func TestListCmd(t *testing.T) {
	cfg := writeConfig(t, testConfig)
	out := filepath.Join(t.TempDir(), "list.json")

	if err := run(t, "--config", cfg, "list", "--format", "json", "--output", out); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var got Listing
	if err := json.Unmarshal(readOutput(t, out), &got); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}

	if got.Kind != ListKind {
		t.Errorf("Kind = %q, want %q", got.Kind, ListKind)
	}
	want := nictag.TagMap{"admin": "00:11:22:aa:bb:cc", "external": "00:01:02:03:04:05"}
	if len(got.Tags) != len(want) {
		t.Fatalf("Tags = %v, want %v", got.Tags, want)
	}
	for k, v := range want {
		if got.Tags[k] != v {
			t.Errorf("Tags[%q] = %q, want %q", k, got.Tags[k], v)
		}
	}
	if strings.Join(got.Etherstubs, ",") != "stub0,stub1" {
		t.Errorf("Etherstubs = %v", got.Etherstubs)
	}
}

func TestListCmd_Table(t *testing.T) {
	cfg := writeConfig(t, testConfig)
	out := filepath.Join(t.TempDir(), "list.txt")

	if err := run(t, "-c", cfg, "list", "-t", "table", "-o", out); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	s := string(readOutput(t, out))
	for _, want := range []string{"FIELD", "tags.admin", "00:11:22:aa:bb:cc", "etherstubs[1]"} {
		if !strings.Contains(s, want) {
			t.Errorf("table output missing %q:\n%s", want, s)
		}
	}
}

func TestListCmd_Errors(t *testing.T) {
	cfg := writeConfig(t, testConfig)

	if err := run(t, "-c", cfg, "list", "--format", "xml"); err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("expected unknown format error, got %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing")
	if err := run(t, "-c", missing, "list"); err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("expected load error, got %v", err)
	}
}

func TestExistsCmd(t *testing.T) {
	cfg := writeConfig(t, testConfig)

	if err := run(t, "-c", cfg, "exists", "admin", "external"); err != nil {
		t.Errorf("expected all tags to exist, got %v", err)
	}

	err := run(t, "-c", cfg, "exists", "admin", "admn", "storage")
	if err == nil {
		t.Fatal("expected error for missing tags")
	}
	for _, want := range []string{`"admn" (did you mean "admin"?)`, `"storage"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}

	if err := run(t, "-c", cfg, "exists"); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestCheckTags(t *testing.T) {
	tags := nictag.TagMap{"admin": "00:11:22:aa:bb:cc"}

	if err := checkTags(tags, []string{"admin"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := checkTags(tags, []string{"zzzzzzzzzz"})
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("no suggestion expected for distant name, got %q", err)
	}
}

func TestValidateCmd(t *testing.T) {
	cfg := writeConfig(t, testConfig)
	out := filepath.Join(t.TempDir(), "validate.yaml")

	if err := run(t, "-c", cfg, "validate", "-o", out); err != nil {
		t.Fatalf("validate without --fail-on-error should succeed: %v", err)
	}

	var got Validation
	if err := yaml.Unmarshal(readOutput(t, out), &got); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if got.Valid {
		t.Error("expected config to be invalid")
	}
	if len(got.Diagnostics) != 2 {
		t.Errorf("expected 2 diagnostics, got %d: %+v", len(got.Diagnostics), got.Diagnostics)
	}
	if got.Tags != 2 {
		t.Errorf("Tags = %d, want 2", got.Tags)
	}

	err := run(t, "-c", cfg, "validate", "--fail-on-error", "-o", out)
	if err == nil || !strings.Contains(err.Error(), "2 problem(s)") {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestValidateCmd_Clean(t *testing.T) {
	cfg := writeConfig(t, "admin_nic=00:11:22:aa:bb:cc\n")
	out := filepath.Join(t.TempDir(), "validate.json")

	if err := run(t, "-c", cfg, "validate", "--fail-on-error", "-t", "json", "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Validation
	if err := json.Unmarshal(readOutput(t, out), &got); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if !got.Valid || len(got.Diagnostics) != 0 {
		t.Errorf("expected clean result, got %+v", got)
	}
}

func TestValidateCmd_LineTooLong(t *testing.T) {
	cfg := writeConfig(t, "admin_nic=00:11:22:aa:bb:cc\nhostname=averyveryverylonghostname\n")
	out := filepath.Join(t.TempDir(), "validate.json")

	err := run(t, "-c", cfg, "--max-line-length", "27", "validate", "--fail-on-error", "-t", "json", "-o", out)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var got Validation
	if err := json.Unmarshal(readOutput(t, out), &got); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if got.Summary["line-too-long"] != 1 {
		t.Errorf("Summary = %v", got.Summary)
	}
}

func TestSysinfoCmd(t *testing.T) {
	cfg := writeConfig(t, testConfig)
	out := filepath.Join(t.TempDir(), "sysinfo.json")

	if err := run(t, "-c", cfg, "sysinfo", "-t", "json", "-o", out); err != nil {
		t.Fatalf("sysinfo failed: %v", err)
	}

	s := string(readOutput(t, out))
	for _, want := range []string{`"kind": "SystemInfo"`, `"type": "NicTag"`, "00:11:22:aa:bb:cc"} {
		if !strings.Contains(s, want) {
			t.Errorf("sysinfo output missing %q", want)
		}
	}
	if strings.Contains(s, "secret") {
		t.Error("sysinfo output leaked a secret")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"yaml", false},
		{"json", false},
		{"table", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var gotErr error
			cmd := &cli.Command{
				Name:  "test",
				Flags: []cli.Flag{&cli.StringFlag{Name: "format"}},
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, gotErr = parseOutputFormat(cmd)
					return nil
				},
			}
			if err := cmd.Run(context.Background(), []string{"test", "--format", tt.format}); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if (gotErr != nil) != tt.wantErr {
				t.Errorf("parseOutputFormat(%q) error = %v, wantErr %v", tt.format, gotErr, tt.wantErr)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{"default", nil, "", "warn"},
		{"env", nil, "error", "error"},
		{"verbose", []string{"-v"}, "error", "info"},
		{"debug wins", []string{"--debug", "-v"}, "", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			var got string
			cmd := &cli.Command{
				Name: "test",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
					&cli.BoolFlag{Name: "debug"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					got = logLevel(cmd)
					return nil
				},
			}
			if err := cmd.Run(context.Background(), append([]string{"test"}, tt.args...)); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("logLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}
