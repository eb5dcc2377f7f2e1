// Package shipping decides which configured shipping zone serves an address
// and which of that zone's rates apply to a cart subtotal.
//
// Everything here is a pure function over values handed in by the caller.
// Nothing is cached, persisted or mutated, so the functions are safe for
// concurrent use.
package shipping
