package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"calcpad/hal"
	"calcpad/internal/config"
	"calcpad/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFile(t *testing.T) {
	cfg := FromFile(config.Default())
	assert.Equal(t, ui.DefaultConfig(), cfg.UI)
}

func TestHeadlessSession(t *testing.T) {
	var log bytes.Buffer
	var session *Session
	var final string

	err := hal.RunHeadless(context.Background(), hal.HostConfig{Width: 320, Height: 480}, hal.HeadlessConfig{
		Hz:        1000,
		Ticks:     6,
		Keys:      "7+",
		LogOutput: &log,
		Done: func(hal.HAL) error {
			final = session.Display().Text()
			return nil
		},
	}, Stepper(FromFile(config.Default()), func(s *Session) { session = s }))
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.Equal(t, "+", final)
	out := log.String()
	assert.Regexp(t, `keypad 320x480 unit=\d+ spacing=12`, out)
	assert.Contains(t, out, `calc: press seven display="7"`)
	assert.Contains(t, out, `calc: press plus display="+"`)
}

func TestStepperReportsStartFailure(t *testing.T) {
	err := hal.RunHeadless(context.Background(), hal.HostConfig{Width: 16, Height: 16}, hal.HeadlessConfig{
		Hz:        1000,
		Ticks:     1,
		LogOutput: &bytes.Buffer{},
	}, Stepper(FromFile(config.Default()), nil))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "start: "))
	assert.ErrorIs(t, err, ui.ErrTooSmall)
}
