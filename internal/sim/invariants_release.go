//go:build !simdebug

package sim

const checkInvariants = false
