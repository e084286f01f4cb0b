package gen

import (
	"strings"

	"github.com/cockroachdb/errors"
)

//go:generate go tool stringer -type=Emitter -trimprefix=Emit -output=emitter_string.go

// Emitter selects the formatter used for a region.
type Emitter int

const (
	_ Emitter = iota // zero value is invalid

	EmitMember
	EmitInstanceProc
	EmitDeviceProc
	EmitExtensionFlag
)

// FormatMember renders a function pointer struct member.
func FormatMember(name string) string {
	return "\tPFN_" + name + " " + name + ";"
}

// FormatInstanceProc renders an instance-level address lookup.
func FormatInstanceProc(name string) string {
	return "\tvk->" + name + " = GET_INS_PROC(vk, " + name + ");"
}

// FormatDeviceProc renders a device-level address lookup.
func FormatDeviceProc(name string) string {
	return "\tvk->" + name + " = GET_DEV_PROC(vk, " + name + ");"
}

// FormatExtensionFlag renders a boolean member tracking an extension.
func FormatExtensionFlag(name string) string {
	return "\tbool has_" + name + ";"
}

// Formatter returns the line formatter for e, or nil for an invalid value.
func (e Emitter) Formatter() Formatter {
	switch e {
	case EmitMember:
		return FormatMember
	case EmitInstanceProc:
		return FormatInstanceProc
	case EmitDeviceProc:
		return FormatDeviceProc
	case EmitExtensionFlag:
		return FormatExtensionFlag
	default:
		return nil
	}
}

// ParseEmitter maps a configuration name to an Emitter. Both the short
// names (member, instance, device, extension) and the String() forms are
// accepted, case-insensitively.
func ParseEmitter(s string) (Emitter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member":
		return EmitMember, nil
	case "instance", "instanceproc":
		return EmitInstanceProc, nil
	case "device", "deviceproc":
		return EmitDeviceProc, nil
	case "extension", "extensionflag":
		return EmitExtensionFlag, nil
	default:
		return 0, errors.Newf("unknown emitter %q (supported: member, instance, device, extension)", s)
	}
}
