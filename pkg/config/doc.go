// Package config parses the provisioning configuration into a Store.
//
// The configuration is a flat text file, one key=value pair per line:
//
//	# admin network
//	admin_nic=00:11:22:aa:bb:cc
//	external_nic=00:11:22:aa:bb:cd
//	etherstub=stub0,stub1
//
// # Format
//
//   - Lines are separated by a single '\n'; the last line needs no terminator.
//   - Empty lines and lines starting with '#' are ignored.
//   - The first '=' separates the key from the value; the value may contain
//     further '=' characters.
//   - There is no quoting or escaping, and no whitespace is trimmed.
//   - A later line with the same key replaces the earlier value.
//
// # Error Handling
//
// A line without '=' or longer than the maximum line length is skipped and
// handed to a diag.Reporter; parsing continues with the next line. Parse only
// fails when the buffer as a whole cannot be processed (ErrCodeResourceExhausted).
//
// # Usage
//
//	store, err := config.Load(ctx, defaults.ConfigPath,
//	    config.WithReporter(collector),
//	)
//	if err != nil {
//	    return err
//	}
//	v, ok := store.Get("etherstub")
//
// A Store is immutable; any number of goroutines may read it concurrently.
package config
