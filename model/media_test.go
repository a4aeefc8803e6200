package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leosakharoff/tweetapi/model"
)

func TestMediaURL(t *testing.T) {
	m := &model.Media{ID: 7, Extension: ".png"}
	assert.Equal(t, "/storage/7.png", m.URL())

	// The default extension covers rows recorded without one.
	m = &model.Media{ID: 8}
	assert.Equal(t, "/storage/8.jpg", m.URL())
}
