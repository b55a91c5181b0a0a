package domain_test

import (
	"testing"

	"github.com/kash-money/kash_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrendBucket_IsValid(t *testing.T) {
	for _, b := range []domain.TrendBucket{domain.BucketDay, domain.BucketWeek, domain.BucketMonth, domain.BucketYear} {
		assert.True(t, b.IsValid(), "bucket %q should be valid", b)
	}

	assert.False(t, domain.TrendBucket("quarter").IsValid())
	assert.False(t, domain.TrendBucket("").IsValid())
}
