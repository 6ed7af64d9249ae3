// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package translate

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// DefaultTokenCacheExpiration keeps folded lookups for the length of a
	// typical run.
	DefaultTokenCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	tokenCacheCleanup = 5 * time.Minute
)

type cachedLookup struct {
	translation string
	found       bool
}

// NewTokenCache creates a cache for lowercased token lookups.
func NewTokenCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = DefaultTokenCacheExpiration
	}
	return cache.New(expiration, tokenCacheCleanup)
}

// CacheToken remembers the lookup result for key, misses included.
func CacheToken(c *cache.Cache, key, translation string, found bool) {
	c.Set(key, cachedLookup{translation: translation, found: found}, cache.DefaultExpiration)
}

// GetToken returns a remembered lookup. cached is false when key has not
// been looked up yet or its entry expired.
func GetToken(c *cache.Cache, key string) (translation string, found, cached bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false, false
	}
	res := val.(cachedLookup)
	return res.translation, res.found, true
}
