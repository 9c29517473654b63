package hid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortItemSizes(t *testing.T) {
	cases := []struct {
		name string
		item Item
		want Data
	}{
		{"usage page 1 byte", UsagePage{UsagePageGenericDesktop}, Data{0x05, 0x01}},
		{"usage 2 bytes", Usage{0x0238}, Data{0x0A, 0x38, 0x02}},
		{"logical min negative 1 byte", LogicalMinimum{-128}, Data{0x15, 0x80}},
		{"logical min negative 2 bytes", LogicalMinimum{-32768}, Data{0x16, 0x00, 0x80}},
		{"logical max 4 bytes", LogicalMaximum{70000}, Data{0x27, 0x70, 0x11, 0x01, 0x00}},
		{"input var abs", Input{MainData | MainVar | MainAbs}, Data{0x81, 0x02}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Report{Items: []Item{tc.item}}.Bytes()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCollectionIsClosed(t *testing.T) {
	got, err := Report{Items: []Item{
		Collection{Kind: CollectionApplication, Items: []Item{Usage{UsageX}}},
	}}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, Data{0xA1, 0x01, 0x09, 0x30, 0xC0}, got)
}

func TestAxes(t *testing.T) {
	got, err := Report{Items: Axes(8, UsageZ)}.Bytes()
	require.NoError(t, err)
	assert.Equal(t, Data{
		0x09, 0x32,
		0x15, 0x80,
		0x25, 0x7F,
		0x75, 0x08,
		0x95, 0x01,
		0x81, 0x02,
	}, got)
}

func TestNilItem(t *testing.T) {
	_, err := Report{Items: []Item{nil}}.Bytes()
	assert.Error(t, err)
}
