package environ

import "strconv"

// Bool reports true when key holds one of "1", "true", "TRUE", "yes", or
// "on".  Any other value, or an unset key, yields def.
func Bool(src Source, key string, def bool) bool {
	v, _ := src.Lookup(key)
	switch v {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return def
}

// Uint32 parses key as a base-10 uint32.  Unset or unparsable values
// yield def.
func Uint32(src Source, key string, def uint32) uint32 {
	if v, ok := src.Lookup(key); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint32(n)
		}
	}
	return def
}

// Uint64 is Uint32 for 64-bit values.
func Uint64(src Source, key string, def uint64) uint64 {
	if v, ok := src.Lookup(key); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

// Float32 parses key as a float32, falling back to def.
func Float32(src Source, key string, def float32) float32 {
	if v, ok := src.Lookup(key); ok {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return def
}

// String returns the value of key, or def when unset.
func String(src Source, key, def string) string {
	if v, ok := src.Lookup(key); ok {
		return v
	}
	return def
}
