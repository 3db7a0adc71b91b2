package helpers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNullString(t *testing.T) {
	assert.Equal(t, sql.NullString{}, GetNullString(nil))

	v := "spring-2021"
	assert.Equal(t, sql.NullString{String: "spring-2021", Valid: true}, GetNullString(&v))
}

func TestGetContentNullString(t *testing.T) {
	// Empty content is stored as NULL, not as an empty string
	assert.Equal(t, sql.NullString{}, GetContentNullString(""))
	assert.Equal(t, sql.NullString{String: "locked", Valid: true}, GetContentNullString("locked"))
}

func TestNullStringPtr(t *testing.T) {
	assert.Nil(t, NullStringPtr(sql.NullString{}))

	got := NullStringPtr(sql.NullString{String: "cse", Valid: true})
	assert.NotNil(t, got)
	assert.Equal(t, "cse", *got)
}
