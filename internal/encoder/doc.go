// Package encoder executes the external encode and tag tools with
// compiled argument lists. It owns subprocess lifecycle and atomic
// output placement; argument construction lives elsewhere.
package encoder
