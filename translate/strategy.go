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
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"
)

// Lookuper is the read-only view of a dictionary the engine needs.
type Lookuper interface {
	Lookup(key string) (string, bool)
}

// Token is a maximal run of ASCII letters from the input.
type Token struct {
	Text     string
	HasUpper bool
}

// ResolveStrategy defines one way of turning a token into its translation
type ResolveStrategy interface {
	Resolve(tok Token) (string, bool)
	SupportsToken(tok Token) bool
	Priority() int // Lower number = higher priority
}

// exactStrategy looks all-lowercase tokens up verbatim.
type exactStrategy struct {
	dict Lookuper
}

func (s *exactStrategy) SupportsToken(tok Token) bool { return !tok.HasUpper }
func (s *exactStrategy) Priority() int                { return 0 }

func (s *exactStrategy) Resolve(tok Token) (string, bool) {
	return s.dict.Lookup(tok.Text)
}

// caseFoldStrategy looks tokens with capitals up in lowercase and carries
// a leading capital over to the translation.
type caseFoldStrategy struct {
	dict  Lookuper
	cache *cache.Cache
}

func (s *caseFoldStrategy) SupportsToken(tok Token) bool { return tok.HasUpper }
func (s *caseFoldStrategy) Priority() int                { return 1 }

func (s *caseFoldStrategy) Resolve(tok Token) (string, bool) {
	key := strings.ToLower(tok.Text)

	translation, ok, cached := GetToken(s.cache, key)
	if !cached {
		translation, ok = s.dict.Lookup(key)
		CacheToken(s.cache, key, translation, ok)
	}
	if !ok {
		return "", false
	}

	if isUpper(tok.Text[0]) {
		return strings.ToUpper(translation[:1]) + translation[1:], true
	}
	return translation, true
}

// Resolver picks the strategy that supports a token.
type Resolver struct {
	strategies []ResolveStrategy
}

// NewResolver creates a resolver with the exact and case-folding strategies.
func NewResolver(dict Lookuper, c *cache.Cache) *Resolver {
	r := &Resolver{}
	r.RegisterStrategy(&exactStrategy{dict: dict})
	r.RegisterStrategy(&caseFoldStrategy{dict: dict, cache: c})
	return r
}

// RegisterStrategy adds a strategy, keeping the list in priority order.
func (r *Resolver) RegisterStrategy(strategy ResolveStrategy) {
	r.strategies = append(r.strategies, strategy)
	sort.SliceStable(r.strategies, func(i, j int) bool {
		return r.strategies[i].Priority() < r.strategies[j].Priority()
	})
}

// Resolve returns the translation of tok, or false if no strategy knows it.
func (r *Resolver) Resolve(tok Token) (string, bool) {
	for _, strategy := range r.strategies {
		if !strategy.SupportsToken(tok) {
			continue
		}
		if translation, ok := strategy.Resolve(tok); ok {
			return translation, true
		}
	}
	return "", false
}
