// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the nictagadm command-line interface.
//
// # Overview
//
// nictagadm reads the provisioning config (/usbkey/config by default), a flat
// key=value file, and reports the NIC tags (<tag>_nic keys holding MAC
// addresses) and etherstubs (the comma-separated etherstub key) it defines.
// All commands are read-only.
//
// # Commands
//
// list - Print tags and etherstubs:
//
//	nictagadm list
//	nictagadm list --format table
//	nictagadm -c ./config list --format json --output tags.json
//
// exists - Check that tags are defined:
//
//	nictagadm exists admin external
//
// Fails naming every missing tag, with a "did you mean" hint when a defined
// tag is close by edit distance.
//
// validate - Report every skipped line and invalid MAC address:
//
//	nictagadm validate
//	nictagadm validate --fail-on-error   # non-zero exit on any problem
//
// sysinfo - Capture a host snapshot:
//
//	nictagadm sysinfo --output sysinfo.yaml
//
// The snapshot (kind: SystemInfo) combines the resolved tags, the config keys
// with secrets removed, kernel boot parameters and uname.
//
// serve - Read-only HTTP API:
//
//	nictagadm serve
//	nictagadm serve --settings /etc/nictagadm/server.yaml
//
// # Global Flags
//
//	--config, -c         Config file (default: /usbkey/config, env NICTAG_CONFIG)
//	--max-line-length    Longest accepted line (default: 1024, env NICTAG_MAX_LINE_LENGTH)
//	--verbose, -v        Enable info logging
//	--debug              Enable debug logging
//	--log-json           Output logs in JSON format
//	--version            Show version information
//
// # Output Formats
//
// YAML (default), JSON, or a two-column FIELD/VALUE table, selected with
// --format. --output writes to a file instead of stdout.
//
// # Environment Variables
//
//	LOG_LEVEL              Set logging verbosity (debug, info, warn, error)
//	NICTAG_CONFIG          Config file path
//	NICTAG_MAX_LINE_LENGTH Longest accepted config line
//	NICTAG_SETTINGS        Server settings file
//	NICTAG_PORT, ...       Server setting overrides
//
// # Version Information
//
// Version information is embedded at build time:
//
//	go build -ldflags="-X 'github.com/NVIDIA/nictagadm/pkg/cli.version=1.0.0'"
package cli
