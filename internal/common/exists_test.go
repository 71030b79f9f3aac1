package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExistsUnknownResource(t *testing.T) {
	// the resource is rejected before the querier is touched
	exists, err := Exists(context.Background(), nil, Resource(99), "mitch")
	assert.False(t, exists)
	assert.True(t, errors.Is(err, ErrUnknownResource))
}

func TestExists(t *testing.T) {
	db := TestDB("file://../../migrations", t)
	SeedTestData(t, db)

	testCases := []struct {
		name     string
		resource Resource
		value    any
		want     bool
	}{
		{name: "existing topic", resource: TopicSlug, value: "cats", want: true},
		{name: "missing topic", resource: TopicSlug, value: "dogs", want: false},
		{name: "existing user", resource: UserUsername, value: "lurker", want: true},
		{name: "missing user", resource: UserUsername, value: "nobody", want: false},
		{name: "existing article", resource: ArticleID, value: 1, want: true},
		{name: "missing article", resource: ArticleID, value: 9999, want: false},
		{name: "existing comment", resource: CommentID, value: 8, want: true},
		{name: "missing comment", resource: CommentID, value: 9999, want: false},
		{name: "injection attempt is just a value", resource: TopicSlug, value: "cats' OR '1'='1", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exists, err := Exists(context.Background(), db, tc.resource, tc.value)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, exists)
		})
	}
}

func TestExistsMalformedValue(t *testing.T) {
	db := TestDB("file://../../migrations", t)

	// a value postgres cannot cast is a fault, not an absent row
	_, err := Exists(context.Background(), db, ArticleID, "not-a-number")
	assert.Error(t, err)
	assert.True(t, IsInvalidTextRepresentation(err))
}

func TestExistsOutOfRangeValue(t *testing.T) {
	db := TestDB("file://../../migrations", t)

	_, err := Exists(context.Background(), db, ArticleID, int64(1)<<40)
	assert.Error(t, err)
	assert.True(t, IsNumericOutOfRange(err))
	assert.False(t, IsInvalidTextRepresentation(err))
}
