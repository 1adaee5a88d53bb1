// Package prf is a tiny counter-based pseudo-random function. The
// generation show needs "random" display characters and LED noise that
// are a pure function of elapsed time, so instead of reseeding a
// generator every frame the renderer keys this PRF with a coarse
// time-bucket index and a lane number.
package prf

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Uint64 hashes the key sequence into a uniform 64-bit value. Equal
// keys always produce equal values.
func Uint64(keys ...uint64) uint64 {
	h := uint64(0x6a09e667f3bcc909)
	for _, k := range keys {
		h = mix(h ^ k)
	}
	return h
}

// Intn returns a value in [0, n) derived from the keys. n <= 0 returns
// 0.
func Intn(n int, keys ...uint64) int {
	if n <= 0 {
		return 0
	}
	return int(Uint64(keys...) % uint64(n))
}

// Float64 returns a value in [0, 1) derived from the keys.
func Float64(keys ...uint64) float64 {
	return float64(Uint64(keys...)>>11) / (1 << 53)
}
