package ratelimit

import (
	"fmt"
	"time"
)

// Allow records one hit for the given address and route and reports whether
// it stays within max hits per window. The counter is a fixed window keyed
// in Redis with the window as its TTL.
func Allow(address, route string, max int, window time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate:%s:%s", route, address)

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		rdb.Expire(ctx, key, window)
	}

	return count <= int64(max), nil
}
