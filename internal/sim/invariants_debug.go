//go:build simdebug

package sim

// checkInvariants makes Step panic on a broken World in simdebug builds.
const checkInvariants = true
