// Package gamepad is the host side of the controller: a HID joystick with 32
// buttons, four 16-bit axes (X, Y, Rx, Ry) and two 8-bit axes (Z, Rz).
package gamepad

import (
	"encoding/binary"
	"io"

	"github.com/Alia5/knobpad/internal/hid"
)

const (
	// NumButtons is the number of joystick buttons, numbered 1 to NumButtons.
	NumButtons = 32

	// ReportSize is the length of an input report in bytes.
	ReportSize = 14
)

// Report is the joystick input report.
//
// Wire format: fixed 14 bytes, little-endian, in descriptor order:
// buttons:u32 x:i16 y:i16 z:i8 rx:i16 ry:i16 rz:i8. Bit n-1 of Buttons is
// button n.
type Report struct {
	Buttons uint32

	X  int16
	Y  int16
	Z  int8
	Rx int16
	Ry int16
	Rz int8
}

// MarshalBinary encodes the report to its 14-byte wire format.
func (r Report) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	binary.LittleEndian.PutUint32(b[0:4], r.Buttons)
	binary.LittleEndian.PutUint16(b[4:6], uint16(r.X))
	binary.LittleEndian.PutUint16(b[6:8], uint16(r.Y))
	b[8] = uint8(r.Z)
	binary.LittleEndian.PutUint16(b[9:11], uint16(r.Rx))
	binary.LittleEndian.PutUint16(b[11:13], uint16(r.Ry))
	b[13] = uint8(r.Rz)
	return b, nil
}

// UnmarshalBinary decodes a report from its 14-byte wire format.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	r.Buttons = binary.LittleEndian.Uint32(data[0:4])
	r.X = int16(binary.LittleEndian.Uint16(data[4:6]))
	r.Y = int16(binary.LittleEndian.Uint16(data[6:8]))
	r.Z = int8(data[8])
	r.Rx = int16(binary.LittleEndian.Uint16(data[9:11]))
	r.Ry = int16(binary.LittleEndian.Uint16(data[11:13]))
	r.Rz = int8(data[13])
	return nil
}

// Pressed reports whether button num is down.
func (r Report) Pressed(num int) bool {
	return num >= 1 && num <= NumButtons && r.Buttons&(1<<(num-1)) != 0
}

// Descriptor returns the HID report descriptor matching Report.
func Descriptor() hid.Data {
	items := []hid.Item{
		hid.UsagePage{Page: hid.UsagePageButton},
		hid.UsageMinimum{Min: 1},
		hid.UsageMaximum{Max: NumButtons},
		hid.LogicalMinimum{Min: 0},
		hid.LogicalMaximum{Max: 1},
		hid.ReportSize{Bits: 1},
		hid.ReportCount{Count: NumButtons},
		hid.Input{Flags: hid.MainData | hid.MainVar | hid.MainAbs},
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
	}
	items = append(items, hid.Axes(16, hid.UsageX, hid.UsageY)...)
	items = append(items, hid.Axes(8, hid.UsageZ)...)
	items = append(items, hid.Axes(16, hid.UsageRx, hid.UsageRy)...)
	items = append(items, hid.Axes(8, hid.UsageRz)...)

	return hid.Report{Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
		hid.Usage{Usage: hid.UsageJoystick},
		hid.Collection{Kind: hid.CollectionApplication, Items: items},
	}}.MustBytes()
}
