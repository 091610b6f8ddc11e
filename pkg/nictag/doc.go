// Package nictag derives nic tags and etherstubs from a parsed config.Store.
//
// A nic tag binds a logical name to a physical interface by MAC address. Tags
// are declared as "<tag>_nic=<mac>" keys; etherstubs (virtual switches) are
// listed comma separated under the "etherstub" key:
//
//	admin_nic=00:11:22:AA:BB:CC
//	external_nic=0:11:22:aa:bb:cd
//	etherstub=stub0,stub1
//
// resolves to
//
//	TagMap{"admin": "00:11:22:aa:bb:cc", "external": "00:11:22:aa:bb:cd"}
//	EtherstubList{"stub0", "stub1"}
//
// MAC values are parsed strictly and re-rendered in canonical form (six
// lowercase two-digit octets joined by ':'). Tags whose value is not a MAC
// address are left out of the TagMap and reported as diag.MalformedMAC.
//
// All functions are pure: they only read the Store and return fresh values.
package nictag
