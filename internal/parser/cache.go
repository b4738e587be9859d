package parser

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zocbuild/zocbuild/internal/checksum"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

// CachingParser memoizes successful parse results of another parser.
// Entries are keyed by the raw content checksum, so identical scripts are
// parsed once. Failures are never cached.
// Safe for concurrent use if the wrapped parser is.
type CachingParser struct {
	inner      zocbuild.ScriptParser
	calculator checksum.Calculator
	cache      *lru.Cache[string, zocbuild.SQLScript]
}

// NewCachingParser wraps inner with an LRU cache holding size entries.
// Panics if inner is nil.
func NewCachingParser(inner zocbuild.ScriptParser, size int) (*CachingParser, error) {
	if inner == nil {
		panic("inner parser cannot be nil")
	}
	cache, err := lru.New[string, zocbuild.SQLScript](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	return &CachingParser{
		inner:      inner,
		calculator: checksum.New(),
		cache:      cache,
	}, nil
}

func (p *CachingParser) Parse(ctx zocbuild.ParseContext, text string) (*zocbuild.SQLScript, error) {
	key := p.calculator.CalculateRaw([]byte(text))
	if cached, ok := p.cache.Get(key); ok {
		return &cached, nil
	}

	script, err := p.inner.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, *script)
	return script, nil
}

// Len returns the number of cached parse results.
func (p *CachingParser) Len() int {
	return p.cache.Len()
}

var _ zocbuild.ScriptParser = (*CachingParser)(nil)
