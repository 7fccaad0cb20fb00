// Package textutil provides filename and title sanitization helpers shared
// by the naming and organizing layers.
package textutil
