package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_Formatter(t *testing.T) {
	tests := []struct {
		emitter Emitter
		want    string
	}{
		{EmitMember, "\tPFN_vkCmdDraw vkCmdDraw;"},
		{EmitInstanceProc, "\tvk->vkCmdDraw = GET_INS_PROC(vk, vkCmdDraw);"},
		{EmitDeviceProc, "\tvk->vkCmdDraw = GET_DEV_PROC(vk, vkCmdDraw);"},
		{EmitExtensionFlag, "\tbool has_vkCmdDraw;"},
	}

	for _, tt := range tests {
		t.Run(tt.emitter.String(), func(t *testing.T) {
			f := tt.emitter.Formatter()
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f("vkCmdDraw"))
		})
	}

	assert.Nil(t, Emitter(0).Formatter())
}

func TestEmitter_String(t *testing.T) {
	assert.Equal(t, "Member", EmitMember.String())
	assert.Equal(t, "DeviceProc", EmitDeviceProc.String())
	assert.Equal(t, "Emitter(0)", Emitter(0).String())
	assert.Equal(t, "Emitter(9)", Emitter(9).String())
}

func TestParseEmitter(t *testing.T) {
	for in, want := range map[string]Emitter{
		"member":        EmitMember,
		"Instance":      EmitInstanceProc,
		" device ":      EmitDeviceProc,
		"DeviceProc":    EmitDeviceProc,
		"extension":     EmitExtensionFlag,
		"extensionflag": EmitExtensionFlag,
	} {
		got, err := ParseEmitter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEmitter("loader")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loader")
}
