package nictag

import (
	"strings"

	"github.com/NVIDIA/nictagadm/pkg/config"
)

// EtherstubKey is the config key listing the configured etherstubs.
const EtherstubKey = "etherstub"

// EtherstubList is an ordered list of etherstub names.
type EtherstubList []string

// ResolveEtherstubs splits the "etherstub" value of store on every ','.
// Order is kept and empty segments are kept as empty names. When the key is
// absent the result is an empty, non-nil list.
func ResolveEtherstubs(store *config.Store) EtherstubList {
	v, ok := store.Get(EtherstubKey)
	if !ok {
		return EtherstubList{}
	}
	return EtherstubList(strings.Split(v, ","))
}
