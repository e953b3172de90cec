package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	opts := Options{}
	opts.setDefaults()

	assert.Equal(t, DefaultSettleDelay, opts.SettleDelay, "Default settle delay should be applied")
}

func TestOptions_CustomValues(t *testing.T) {
	opts := Options{SettleDelay: 20 * time.Millisecond}
	opts.setDefaults()

	assert.Equal(t, 20*time.Millisecond, opts.SettleDelay, "Custom settle delay should be preserved")
}
