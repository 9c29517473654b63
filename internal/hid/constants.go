package hid

// Usage pages used by the joystick descriptor (HID Usage Tables).
const (
	UsagePageGenericDesktop uint16 = 0x01
	UsagePageButton         uint16 = 0x09
)

// Generic Desktop usages.
const (
	UsageJoystick uint16 = 0x04
	UsageX        uint16 = 0x30
	UsageY        uint16 = 0x31
	UsageZ        uint16 = 0x32
	UsageRx       uint16 = 0x33
	UsageRy       uint16 = 0x34
	UsageRz       uint16 = 0x35
)

// CollectionKind values.
type CollectionKind uint8

const CollectionApplication CollectionKind = 0x01

// MainFlags are the data bits of Input items. Data, Var and Abs are the
// values of bits 0, 1 and 2; their zero counterparts are implied.
type MainFlags uint8

const (
	MainData MainFlags = 0x00
	MainVar  MainFlags = 0x02
	MainAbs  MainFlags = 0x00
)
